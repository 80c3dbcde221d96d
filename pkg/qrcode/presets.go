package qr

// Default is the baseline render preset the CLI and batch paths start from.
var Default = Config{
	Size:       DefaultSize,
	Level:      LevelHighest,
	Shape:      ShapeSquare,
	Mode:       ModeSolid,
	Foreground: "#000000",
	Background: "#FFFFFF",
}

// Dark is a ready-made inverted preset.
var Dark = Config{
	Size:       DefaultSize,
	Level:      LevelHighest,
	Shape:      ShapeRounded,
	Mode:       ModeSolid,
	Foreground: "#E6E6E6",
	Background: "#141414",
}
