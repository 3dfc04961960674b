// Package model defines the data structures shared by the marks packages:
// line-mark specs, their intervals and per-file review status.
package model

// Path represents a file system path.
type Path string

// SourceLine is one line of a source file together with its mark state.
type SourceLine struct {
	Offset LineOffset
	Text   string
	Marked bool
}

// Annotate pairs each line of a file with its mark state under spec.
// It fails with ErrTooManyLines when lines cannot all be addressed.
func Annotate(lines []string, spec MarkSpec) ([]SourceLine, error) {
	if len(lines) > int(MaxLineOffset)+1 {
		return nil, ErrTooManyLines
	}

	annotated := make([]SourceLine, 0, len(lines))
	for i, text := range lines {
		offset := LineOffset(i)
		annotated = append(annotated, SourceLine{
			Offset: offset,
			Text:   text,
			Marked: spec.Matches(offset),
		})
	}

	return annotated, nil
}
