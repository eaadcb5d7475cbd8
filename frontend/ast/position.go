package ast

import (
	"fmt"
)

// Positioner allows finding the location in the original source file.
// The easiest way to be a Positioner is to embed a Location
type Positioner interface {
	Loc() Location
}

// Location is where a node starts in the original source.
// Line and Column are 1-based, Offset is the 0-based byte offset.
type Location struct {
	File   string
	Line   int
	Column int
	Offset int
}

// Loc returns l, so that embedding a Location makes a node a Positioner
func (l Location) Loc() Location { return l }

// IsZero reports whether l was never set
func (l Location) IsZero() bool { return l == Location{} }

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// LocOf returns the Location of p, or the zero Location if p is nil
func LocOf(p Positioner) Location {
	if p == nil {
		return Location{}
	}
	return p.Loc()
}
