package model

import (
	"fmt"
	"strings"
)

// Direction is a geometric nudge direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four nudge directions in a stable order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	}
	return DirLeft
}

// ParseDirection converts a string flag value to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return DirUp, fmt.Errorf("unknown direction: %q (expected up, down, left, or right)", s)
	}
}

// RotateDirection is the sequential rotate direction in document order.
type RotateDirection int

const (
	// RotateForward advances later in document order.
	RotateForward RotateDirection = iota

	// RotateBackward retreats earlier in document order.
	RotateBackward
)

// String returns the lowercase name of the rotate direction.
func (d RotateDirection) String() string {
	if d == RotateBackward {
		return "backward"
	}
	return "forward"
}

// ParseRotateDirection converts a string flag value to a RotateDirection.
func ParseRotateDirection(s string) (RotateDirection, error) {
	switch strings.ToLower(s) {
	case "forward", "cw", "clockwise":
		return RotateForward, nil
	case "backward", "ccw", "counterclockwise":
		return RotateBackward, nil
	default:
		return RotateForward, fmt.Errorf("unknown rotate direction: %q (expected forward or backward)", s)
	}
}
