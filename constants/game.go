package constants

// Title is shown in the terminal title bar and the status bar
const Title = "Phonk Racer"

// Screen geometry in game pixels
const (
	ScreenWidth  = 500
	ScreenHeight = 700
)

// Object geometry in game pixels
const (
	ObjWidth  = 50
	ObjHeight = 50

	CarWidth  = 70
	CarHeight = 80
)

// Speeds in pixels per tick
const (
	PlayerSpeed = 6
	ObjSpeed    = 5
	CracksSpeed = 5

	EnemyMinSpeed = 6
	EnemyMaxSpeed = 10 // inclusive
)

// Population targets
const (
	NCars   = 4
	NTrees  = 4 // per side, trees spawn in pairs
	NCracks = 3
)

// Spawn geometry
const (
	// EnemySpawnY is the fixed off-screen row new and recycled enemies start at
	EnemySpawnY = -100

	// DecorationMinY is the lowest y (topmost) a decoration may be placed at
	DecorationMinY = -100

	// TreeRightMargin is subtracted from the screen width for the right-hand tree column
	TreeRightMargin = 50

	CrackMinX  = 40
	CrackMaxX  = 400 // exclusive
	CrackStepX = 20
)

// Recycle ranges, [min, max) with step
const (
	TreeRespawnMinY  = -100
	TreeRespawnMaxY  = -40
	TreeRespawnStepY = 10

	CrackRespawnMinY  = -100
	CrackRespawnMaxY  = -10
	CrackRespawnStepY = 20
)
