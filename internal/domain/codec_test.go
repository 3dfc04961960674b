package domain

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/marks/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec_CommentsLinesAndRanges(t *testing.T) {
	spec, err := ParseSpecString("# reviewed\n3\n10-15\n")
	require.NoError(t, err)

	assert.Equal(t, m.Partial(m.Line(2), m.Range(9, 14)), spec)

	assert.True(t, spec.Matches(2))
	assert.True(t, spec.Matches(9))
	assert.True(t, spec.Matches(13))
	assert.False(t, spec.Matches(14))
	assert.False(t, spec.Matches(20))
}

func TestParseSpec_AllMagic(t *testing.T) {
	spec, err := ParseSpecString("-*- all -*-\n")
	require.NoError(t, err)

	assert.Equal(t, m.All(), spec)
	assert.True(t, spec.Matches(0))
	assert.True(t, spec.Matches(m.MaxLineOffset))

	spec.Remove(5)
	assert.Equal(t, m.Partial(m.Range(0, 5), m.Range(6, m.MaxLineOffset)), spec)
	assert.False(t, spec.Matches(5))
	assert.True(t, spec.Matches(0))
	assert.True(t, spec.Matches(65534))
}

func TestParseSpec_Variants(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want m.MarkSpec
	}{
		{"empty file", "", m.Partial()},
		{"blank lines skipped", "\n\n4\n\n", m.Partial(m.Line(3))},
		{"whitespace around range", "  7 -  9  \n", m.Partial(m.Range(6, 8))},
		{"crlf line endings", "3\r\n5-6\r\n", m.Partial(m.Line(2), m.Range(4, 5))},
		{"zero and one both map to offset zero", "0\n1\n", m.Partial(m.Line(0), m.Line(0))},
		{"magic stops parsing", "2\nnote: -*- all -*- here\nnot a number\n", m.All()},
		{"commented magic ignored", "# -*- all -*-\n2\n", m.Partial(m.Line(1))},
		{"trailing number after text", "reviewed 12\n", m.Partial(m.Line(11))},
		{"largest line number", "65536\n", m.Partial(m.Line(m.MaxLineOffset))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSpecString(tt.in)
			require.NoError(t, err)

			assert.Equal(t, tt.want, spec)
		})
	}
}

func TestParseSpec_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
		line    int
	}{
		{"text line", "3\nlooks fine\n", ErrInvalidSpecLine, 2},
		{"dangling dash", "4-\n", ErrInvalidSpecLine, 1},
		{"number too large", "65537\n", ErrLineNumberOverflow, 1},
		{"range bound too large", "# c\n\n1-99999999999999999999\n", ErrLineNumberOverflow, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpecString(tt.in)
			require.ErrorIs(t, err, tt.wantErr)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.line, parseErr.Line)
		})
	}
}

func TestWriteSpec(t *testing.T) {
	tests := []struct {
		name string
		spec m.MarkSpec
		want string
	}{
		{"all", m.All(), "-*- all -*-\n"},
		{"empty", m.Partial(), ""},
		{"line and range", m.Partial(m.Line(2), m.Range(9, 14)), "3\n10-15\n"},
		{"domain end", m.Partial(m.Range(6, m.MaxLineOffset), m.Line(m.MaxLineOffset)), "7-65536\n65536\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteSpec(&buf, tt.spec))

			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.want, FormatSpec(tt.spec))
		})
	}
}

func TestSpec_LastLineNumberBoundary(t *testing.T) {
	// Offset 65535 is written one-based as 65536, which the parser accepts.
	written := FormatSpec(m.Partial(m.Range(6, m.MaxLineOffset), m.Line(m.MaxLineOffset)))
	assert.Equal(t, "7-65536\n65536\n", written)

	spec, err := ParseSpecString("65536\n")
	require.NoError(t, err)
	assert.Equal(t, m.Partial(m.Line(m.MaxLineOffset)), spec)
	assert.Equal(t, "65536\n", FormatSpec(spec))

	_, err = ParseSpecString("65537\n")
	require.ErrorIs(t, err, ErrLineNumberOverflow)

	_, err = ParseSpecString("1-65537\n")
	require.ErrorIs(t, err, ErrLineNumberOverflow)
}

func TestSpecRoundTrip(t *testing.T) {
	specs := []m.MarkSpec{
		m.All(),
		m.Partial(),
		m.Partial(m.Line(0), m.Range(4, 9), m.Line(40)),
		m.Partial(m.Range(0, 5), m.Range(6, m.MaxLineOffset)),
		m.Partial(m.Line(3), m.Range(m.MaxLineOffset-1, m.MaxLineOffset), m.Line(m.MaxLineOffset)),
	}

	for _, spec := range specs {
		t.Run(spec.String(), func(t *testing.T) {
			canonical := spec.Clone()
			canonical.Optimize()

			parsed, err := ParseSpecString(FormatSpec(canonical))
			require.NoError(t, err)

			assert.Equal(t, canonical.Kind, parsed.Kind)
			assert.Equal(t, canonical.Intervals, parsed.Intervals)

			for _, offset := range []m.LineOffset{0, 3, 4, 5, 8, 9, 40, m.MaxLineOffset - 1, m.MaxLineOffset} {
				assert.Equalf(t, canonical.Matches(offset), parsed.Matches(offset), "offset %d", offset)
			}
		})
	}
}

func TestParseSpec_ReaderError(t *testing.T) {
	_, err := ParseSpec(&failingReader{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "read spec"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}
