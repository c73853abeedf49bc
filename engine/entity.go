package engine

// Kind discriminates the two movable object variants
type Kind uint8

const (
	KindCar        Kind = iota // Player or enemy car, collision-checked
	KindDecoration             // Tree or pavement crack, purely visual
)

// String returns the kind name for logs
func (k Kind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// Object is a movable game object: position and vertical speed in game pixels.
// Skin is the asset path the renderer draws; Rotated marks oncoming (enemy) cars
type Object struct {
	Kind    Kind
	X, Y    int
	Speed   int
	Skin    string
	Rotated bool
}

// NewCar creates a car record
func NewCar(x, y int, skin string, speed int, rotated bool) Object {
	return Object{
		Kind:    KindCar,
		X:       x,
		Y:       y,
		Speed:   speed,
		Skin:    skin,
		Rotated: rotated,
	}
}

// NewDecoration creates a road decoration record (tree or crack)
func NewDecoration(x, y int, skin string, speed int) Object {
	return Object{
		Kind:  KindDecoration,
		X:     x,
		Y:     y,
		Speed: speed,
		Skin:  skin,
	}
}

// Move advances the object by its speed. No bounds checking, callers recycle
func (o *Object) Move() {
	o.Y += o.Speed
}

// Below reports whether the object has drifted past the bottom edge
func (o *Object) Below(screenHeight int) bool {
	return o.Y > screenHeight
}
