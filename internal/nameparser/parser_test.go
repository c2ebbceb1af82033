package nameparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/name-sorter/internal/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.Name
	}{
		{
			name: "first and last",
			line: "John Doe",
			want: types.Name{FirstName: "John", LastName: "Doe"},
		},
		{
			name: "one middle name",
			line: "John Michael Doe",
			want: types.Name{FirstName: "John", MiddleNames: "Michael", LastName: "Doe"},
		},
		{
			name: "two middle names",
			line: "John Michael Second Doe",
			want: types.Name{FirstName: "John", MiddleNames: "Michael Second", LastName: "Doe"},
		},
		{
			name: "repeated spaces",
			line: "John   Michael    Doe",
			want: types.Name{FirstName: "John", MiddleNames: "Michael", LastName: "Doe"},
		},
		{
			name: "leading and trailing spaces",
			line: "   John Michael Doe   ",
			want: types.Name{FirstName: "John", MiddleNames: "Michael", LastName: "Doe"},
		},
		{
			name: "tabs and mixed whitespace",
			line: "\tJohn \t Michael Paul  Doe\r",
			want: types.Name{FirstName: "John", MiddleNames: "Michael Paul", LastName: "Doe"},
		},
		{
			name: "punctuation kept verbatim",
			line: "John O'Connor Smith-Jones",
			want: types.Name{FirstName: "John", MiddleNames: "O'Connor", LastName: "Smith-Jones"},
		},
		{
			name: "digits accepted",
			line: "R2 D2",
			want: types.Name{FirstName: "R2", LastName: "D2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_TwoTokensHaveNoMiddleNames(t *testing.T) {
	got, err := Parse("Vaughn Lewis")
	require.NoError(t, err)
	assert.False(t, got.HasMiddleNames())
	assert.Empty(t, got.MiddleNames)
}

func TestParse_FormatError(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		tokens int
	}{
		{name: "empty", line: "", tokens: 0},
		{name: "whitespace only", line: " \t  ", tokens: 0},
		{name: "single token", line: "John", tokens: 1},
		{name: "single token with spaces", line: "   John   ", tokens: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			require.Error(t, err)

			var fe *FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.line, fe.Line)
			assert.Equal(t, tt.tokens, fe.Tokens)
		})
	}
}

func TestFormatError_Message(t *testing.T) {
	_, err := Parse("John")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"John"`)
	assert.Contains(t, err.Error(), "got 1 part(s)")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   types.Name
		want string
	}{
		{
			name: "with middle name",
			in:   types.Name{FirstName: "John", MiddleNames: "Michael", LastName: "Doe"},
			want: "John Michael Doe",
		},
		{
			name: "with two middle names",
			in:   types.Name{FirstName: "John", MiddleNames: "Michael Second", LastName: "Doe"},
			want: "John Michael Second Doe",
		},
		{
			name: "no middle name",
			in:   types.Name{FirstName: "John", LastName: "Doe"},
			want: "John Doe",
		},
		{
			name: "blank middle name",
			in:   types.Name{FirstName: "John", MiddleNames: "   ", LastName: "Doe"},
			want: "John Doe",
		},
		{
			name: "blank first name",
			in:   types.Name{FirstName: " ", MiddleNames: "Michael", LastName: "Doe"},
			want: "Michael Doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(&tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_NilRecord(t *testing.T) {
	_, err := Format(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestRoundTrip(t *testing.T) {
	lines := []string{
		"Janet Parsons",
		"Adonis Julius Archer",
		"Shelby Nathan Yoder",
		"Hunter Uriah Mathew Clarke",
		"Zoë Ångström",
		"Mary-Jane O'Neil",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			parsed, err := Parse(line)
			require.NoError(t, err)

			formatted, err := Format(&parsed)
			require.NoError(t, err)
			assert.Equal(t, line, formatted)

			reparsed, err := Parse(formatted)
			require.NoError(t, err)
			assert.Equal(t, parsed, reparsed)
		})
	}
}

func TestRoundTrip_NormalisesIrregularSpacing(t *testing.T) {
	parsed, err := Parse("  Adonis   Julius \t Archer ")
	require.NoError(t, err)

	formatted, err := Format(&parsed)
	require.NoError(t, err)
	assert.Equal(t, "Adonis Julius Archer", formatted)
}

func TestFormatAll(t *testing.T) {
	names := []types.Name{
		{FirstName: "Adonis", MiddleNames: "Julius", LastName: "Archer"},
		{FirstName: "Vaughn", LastName: "Lewis"},
	}
	assert.Equal(t, []string{"Adonis Julius Archer", "Vaughn Lewis"}, FormatAll(names))
	assert.Empty(t, FormatAll(nil))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\r"))
	assert.False(t, IsBlank(" x "))
}
