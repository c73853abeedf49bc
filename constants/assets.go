package constants

// Asset directory layout, relative to the asset root
const (
	CarSkinsDir    = "cars"
	RoadSkinsDir   = "road"
	CracksSkinsDir = "cracks"
	SoundsDir      = "sounds"
	TreesDir       = "trees"
)

// Well-known asset files
const (
	PlayerCar      = "red.png"
	RoadImage      = "road.png"
	SoundtrackName = "soundtrack"
)

// DefaultAssetRoot is used when no -assets flag is given
const DefaultAssetRoot = "assets"
