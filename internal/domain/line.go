package domain

// Line is a directional cluster of positions sharing one approach from the hub.
type Line string

const (
	LineCenter Line = "CENTER"
	LineEast   Line = "EAST"
	LineWest   Line = "WEST"
	LineSouth  Line = "SOUTH"
)

func (l Line) String() string { return string(l) }
