package model

import (
	"fmt"
	"math"
)

// LineOffset is a zero-based line index within a source file.
type LineOffset uint16

// MaxLineOffset is the largest representable line offset. Files with more
// lines than MaxLineOffset+1 cannot carry marks.
const MaxLineOffset LineOffset = math.MaxUint16

// IntervalKind tells a single-line interval from a half-open range.
type IntervalKind int

// Available IntervalKind values.
const (
	IntervalLine IntervalKind = iota
	IntervalRange
)

// Interval covers either one offset (Line) or the half-open span
// [Left, Right) (Range). For a Line only Left is meaningful.
type Interval struct {
	Kind  IntervalKind
	Left  LineOffset
	Right LineOffset
}

// Line returns an interval covering exactly offset.
func Line(offset LineOffset) Interval {
	return Interval{Kind: IntervalLine, Left: offset}
}

// Range returns the half-open interval [l, r).
func Range(l, r LineOffset) Interval {
	return Interval{Kind: IntervalRange, Left: l, Right: r}
}

// Covers reports whether offset lies inside the interval.
func (iv Interval) Covers(offset LineOffset) bool {
	switch iv.Kind {
	case IntervalLine:
		return iv.Left == offset
	case IntervalRange:
		return iv.Left <= offset && offset < iv.Right
	}

	return false
}

func (iv Interval) String() string {
	switch iv.Kind {
	case IntervalLine:
		return fmt.Sprintf("Line(%d)", iv.Left)
	case IntervalRange:
		return fmt.Sprintf("Range(%d,%d)", iv.Left, iv.Right)
	}

	return "Interval(?)"
}
