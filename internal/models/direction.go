package models

// Direction is the side of the vehicle the sun falls on
type Direction string

// Direction values
const (
	DirectionFront Direction = "FRONT"
	DirectionRight Direction = "RIGHT"
	DirectionBack  Direction = "BACK"
	DirectionLeft  Direction = "LEFT"
)

// Directions lists all classes in clockwise order starting ahead of the vehicle
var Directions = []Direction{DirectionFront, DirectionRight, DirectionBack, DirectionLeft}

// Overlay colors
const (
	ColorFront        = "#f59e0b" // amber
	ColorRight        = "#ef4444" // red
	ColorBack         = "#10b981" // green
	ColorLeft         = "#2563eb" // blue
	ColorUnclassified = "#888888"
	ColorRoute        = "#1f7ae0"
)

// Color returns the overlay color tag for the direction
func (d Direction) Color() string {
	switch d {
	case DirectionFront:
		return ColorFront
	case DirectionRight:
		return ColorRight
	case DirectionBack:
		return ColorBack
	case DirectionLeft:
		return ColorLeft
	default:
		return ColorUnclassified
	}
}
