package model

import (
	"errors"
	"slices"
	"strings"
)

// ErrTooManyLines is returned when a file has more lines than a LineOffset can address.
var ErrTooManyLines = errors.New("file exceeds the maximum number of markable lines")

// SpecKind distinguishes the two MarkSpec variants.
type SpecKind int

// Available SpecKind values.
const (
	// SpecPartial marks exactly the offsets covered by Intervals.
	SpecPartial SpecKind = iota
	// SpecAll marks every offset.
	SpecAll
)

// MarkSpec records which lines of one file are marked.
//
// A partial spec keeps its intervals in insertion order; they may overlap or
// repeat until Optimize rewrites them into canonical form (sorted, maximal
// runs, singletons as Line).
type MarkSpec struct {
	Kind      SpecKind
	Intervals []Interval
}

// All returns a spec that marks every line.
func All() MarkSpec {
	return MarkSpec{Kind: SpecAll}
}

// Partial returns a spec marking the offsets covered by intervals.
func Partial(intervals ...Interval) MarkSpec {
	return MarkSpec{Kind: SpecPartial, Intervals: append([]Interval{}, intervals...)}
}

// Matches reports whether offset is marked.
func (s MarkSpec) Matches(offset LineOffset) bool {
	switch s.Kind {
	case SpecAll:
		return true
	case SpecPartial:
		for _, iv := range s.Intervals {
			if iv.Covers(offset) {
				return true
			}
		}
	}

	return false
}

// Add marks offset. Partial specs grow by one Line entry, duplicates included.
func (s *MarkSpec) Add(offset LineOffset) {
	switch s.Kind {
	case SpecAll:
	case SpecPartial:
		s.Intervals = append(s.Intervals, Line(offset))
	}
}

// Remove unmarks offset.
//
// On a partial spec only the first interval covering offset is edited; other
// overlapping intervals are left as they are, so offset can stay marked until
// the spec has been optimized.
func (s *MarkSpec) Remove(offset LineOffset) {
	switch s.Kind {
	case SpecAll:
		if offset == MaxLineOffset {
			*s = Partial(Range(0, MaxLineOffset))
			return
		}

		*s = Partial(Range(0, offset), Range(offset+1, MaxLineOffset))
	case SpecPartial:
		idx := slices.IndexFunc(s.Intervals, func(iv Interval) bool { return iv.Covers(offset) })
		if idx < 0 {
			return
		}

		s.removeAt(idx, offset)
	}
}

func (s *MarkSpec) removeAt(idx int, offset LineOffset) {
	iv := s.Intervals[idx]

	switch iv.Kind {
	case IntervalLine:
		s.Intervals = slices.Delete(s.Intervals, idx, idx+1)
	case IntervalRange:
		switch {
		case iv.Right-iv.Left == 1:
			// Only offset is covered. Dropping the range, rather than
			// turning it into Line(iv.Left), is what leaves offset unmarked.
			s.Intervals = slices.Delete(s.Intervals, idx, idx+1)
		case offset == iv.Left:
			s.Intervals[idx] = Range(iv.Left+1, iv.Right)
		case offset == iv.Right-1:
			s.Intervals[idx] = Range(iv.Left, iv.Right-1)
		default:
			s.Intervals[idx] = Range(iv.Left, offset)
			s.Intervals = slices.Insert(s.Intervals, idx+1, Range(offset+1, iv.Right))
		}
	}
}

// Optimize rewrites a partial spec into canonical form. All is left alone.
//
// Runs are sorted and maximal, with one exception at the end of the domain:
// a half-open range cannot reach past MaxLineOffset, so a marked
// MaxLineOffset is always a separate Line(MaxLineOffset), possibly right
// after a Range(l, MaxLineOffset).
func (s *MarkSpec) Optimize() {
	switch s.Kind {
	case SpecAll:
	case SpecPartial:
		s.Intervals = rebuildIntervals(s.Intervals)
	}
}

// Clone returns a copy that shares no interval storage with s.
func (s MarkSpec) Clone() MarkSpec {
	switch s.Kind {
	case SpecAll:
		return All()
	case SpecPartial:
		return Partial(s.Intervals...)
	}

	return MarkSpec{}
}

func (s MarkSpec) String() string {
	switch s.Kind {
	case SpecAll:
		return "All"
	case SpecPartial:
		parts := make([]string, 0, len(s.Intervals))
		for _, iv := range s.Intervals {
			parts = append(parts, iv.String())
		}

		return "Partial([" + strings.Join(parts, ", ") + "])"
	}

	return "MarkSpec(?)"
}

// presence expands intervals into a table over [0, MaxLineOffset). A half-open
// range cannot reach MaxLineOffset, so that offset is reported separately.
func presence(intervals []Interval) ([]bool, bool) {
	table := make([]bool, MaxLineOffset)
	last := false

	for _, iv := range intervals {
		switch iv.Kind {
		case IntervalLine:
			if iv.Left == MaxLineOffset {
				last = true
				continue
			}

			table[iv.Left] = true
		case IntervalRange:
			for o := int(iv.Left); o < int(iv.Right); o++ {
				table[o] = true
			}
		}
	}

	return table, last
}

func rebuildIntervals(intervals []Interval) []Interval {
	table, last := presence(intervals)
	result := make([]Interval, 0, len(intervals))
	left := -1

	for offset, ok := range table {
		switch {
		case ok && left < 0:
			left = offset
		case !ok && left >= 0:
			if offset-left == 1 {
				result = append(result, Line(LineOffset(left)))
			} else {
				result = append(result, Range(LineOffset(left), LineOffset(offset)))
			}

			left = -1
		}
	}

	// A run touching the end of the table is always written as a range,
	// even a single offset.
	if left >= 0 {
		result = append(result, Range(LineOffset(left), MaxLineOffset))
	}

	if last {
		result = append(result, Line(MaxLineOffset))
	}

	return result
}
