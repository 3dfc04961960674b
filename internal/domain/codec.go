package domain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	m "github.com/mouse-blink/marks/internal/model"
)

// AllMagic is the directive that marks every line of a file.
const AllMagic = "-*- all -*-"

// maxFileNumber is the largest 1-indexed line number a spec file may hold:
// offset MaxLineOffset written one-based.
const maxFileNumber = int(m.MaxLineOffset) + 1

var (
	// ErrInvalidSpecLine is returned for a directive that is neither a number nor a range.
	ErrInvalidSpecLine = errors.New("invalid spec format")
	// ErrLineNumberOverflow is returned for a line number outside the addressable domain.
	ErrLineNumberOverflow = errors.New("line number out of range")
)

// The range pattern must be tried first: the number pattern also matches the
// tail of a range line.
var (
	rangePattern  = regexp.MustCompile(`\s*(\d+)\s*-\s*(\d+)\s*$`)
	numberPattern = regexp.MustCompile(`\s*(\d+)\s*$`)
)

// ParseError describes the spec file line that stopped parsing.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("spec line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseSpec reads a spec file. Blank lines and lines starting with '#' are
// skipped, a line containing AllMagic yields All, and anything else must be
// "<N>" or "<N>-<M>" with 1-indexed numbers. Any other line fails the whole
// parse.
func ParseSpec(r io.Reader) (m.MarkSpec, error) {
	intervals := []m.Interval{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.Contains(line, AllMagic) {
			return m.All(), nil
		}

		interval, err := parseDirective(line)
		if err != nil {
			return m.MarkSpec{}, &ParseError{Line: lineNo, Text: line, Err: err}
		}

		intervals = append(intervals, interval)
	}

	if err := scanner.Err(); err != nil {
		return m.MarkSpec{}, fmt.Errorf("read spec: %w", err)
	}

	return m.Partial(intervals...), nil
}

// ParseSpecString parses spec text held in memory.
func ParseSpecString(text string) (m.MarkSpec, error) {
	return ParseSpec(strings.NewReader(text))
}

func parseDirective(line string) (m.Interval, error) {
	if groups := rangePattern.FindStringSubmatch(line); groups != nil {
		from, err := parseOffset(groups[1])
		if err != nil {
			return m.Interval{}, err
		}

		to, err := parseOffset(groups[2])
		if err != nil {
			return m.Interval{}, err
		}

		return m.Range(from, to), nil
	}

	if groups := numberPattern.FindStringSubmatch(line); groups != nil {
		offset, err := parseOffset(groups[1])
		if err != nil {
			return m.Interval{}, err
		}

		return m.Line(offset), nil
	}

	return m.Interval{}, ErrInvalidSpecLine
}

// parseOffset converts a 1-indexed number to an offset; 0 and 1 both map to 0.
func parseOffset(digits string) (m.LineOffset, error) {
	n, err := strconv.Atoi(digits)
	if err != nil || n > maxFileNumber {
		return 0, fmt.Errorf("%w: %s", ErrLineNumberOverflow, digits)
	}

	if n == 0 {
		return 0, nil
	}

	return m.LineOffset(n - 1), nil
}

// WriteSpec writes spec in the format read by ParseSpec. Both bounds of a
// range are shifted to one-based, so Range(9, 14) is written as "10-15".
func WriteSpec(w io.Writer, spec m.MarkSpec) error {
	bw := bufio.NewWriter(w)

	switch spec.Kind {
	case m.SpecAll:
		if _, err := fmt.Fprintln(bw, AllMagic); err != nil {
			return err
		}
	case m.SpecPartial:
		for _, iv := range spec.Intervals {
			if err := writeInterval(bw, iv); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

func writeInterval(w io.Writer, iv m.Interval) error {
	var err error

	switch iv.Kind {
	case m.IntervalLine:
		_, err = fmt.Fprintf(w, "%d\n", int(iv.Left)+1)
	case m.IntervalRange:
		_, err = fmt.Fprintf(w, "%d-%d\n", int(iv.Left)+1, int(iv.Right)+1)
	}

	return err
}

// FormatSpec returns the spec file text for spec.
func FormatSpec(spec m.MarkSpec) string {
	var sb strings.Builder

	_ = WriteSpec(&sb, spec)

	return sb.String()
}
