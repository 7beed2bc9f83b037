package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "wordhoard-backend/pkg/errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "uppercases ascii letters", input: "hello", want: "HELLO"},
		{name: "strips spaces", input: "HELLO WORLD", want: "HELLOWORLD"},
		{name: "strips tabs and newlines", input: "a\tb\r\nc", want: "ABC"},
		{name: "mixed case and whitespace", input: " Hello\n World ", want: "HELLOWORLD"},
		{name: "digits and punctuation pass through", input: "a1-b2!", want: "A1-B2!"},
		{name: "non ascii bytes pass through", input: "caf\xc3\xa9", want: "CAF\xc3\xa9"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: " \t\r\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Hello World", "ALREADY UPPER", "mixed 123 !?", "\tpadded\n"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestNewLetterSet(t *testing.T) {
	set := NewLetterSet("Hello World")

	assert.Equal(t, 1, set.Count('H'))
	assert.Equal(t, 1, set.Count('E'))
	assert.Equal(t, 3, set.Count('L'))
	assert.Equal(t, 2, set.Count('O'))
	assert.Equal(t, 1, set.Count('W'))
	assert.Equal(t, 1, set.Count('R'))
	assert.Equal(t, 1, set.Count('D'))
	assert.Equal(t, 0, set.Count(' '))
	assert.Equal(t, 10, set.Total())
}

func TestLetterSet_Add(t *testing.T) {
	set := NewLetterSet("AB")
	set.Add(NewLetterSet("BC"))

	assert.Equal(t, 1, set.Count('A'))
	assert.Equal(t, 2, set.Count('B'))
	assert.Equal(t, 1, set.Count('C'))
	assert.Equal(t, 4, set.Total())
}

func TestLetterSet_Covers(t *testing.T) {
	tests := []struct {
		name string
		held string
		need string
		want bool
	}{
		{name: "exact cover", held: "HELLO", need: "HELLO", want: true},
		{name: "superset covers", held: "HHEELLLLOO", need: "HELLO", want: true},
		{name: "missing class", held: "HELL", need: "HELLO", want: false},
		{name: "insufficient count", held: "HELO", need: "HELLO", want: false},
		{name: "empty need is vacuously covered", held: "", need: "", want: true},
		{name: "empty need against held", held: "XYZ", need: "   ", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			held := NewLetterSet(tt.held)
			assert.Equal(t, tt.want, held.Covers(NewLetterSet(tt.need)))
		})
	}
}

func TestLetterSet_Subtract(t *testing.T) {
	set := NewLetterSet("HHEELLLLOO")

	err := set.Subtract(NewLetterSet("HELLO"))
	require.NoError(t, err)

	assert.Equal(t, 1, set.Count('H'))
	assert.Equal(t, 1, set.Count('E'))
	assert.Equal(t, 2, set.Count('L'))
	assert.Equal(t, 1, set.Count('O'))
}

func TestLetterSet_Subtract_ShortageLeavesStateUntouched(t *testing.T) {
	set := NewLetterSet("HELO")
	before := set.Counts()

	err := set.Subtract(NewLetterSet("HELLO"))
	require.Error(t, err)
	assert.True(t, apperrors.IsShortage(err))

	assert.Equal(t, before, set.Counts())
}

func TestLetterSet_CountsRoundTrip(t *testing.T) {
	set := NewLetterSet("BALLOON")

	rebuilt := LetterSetFromCounts(set.Counts())
	assert.Equal(t, set.Counts(), rebuilt.Counts())
	assert.Equal(t, set.Total(), rebuilt.Total())
}

func TestLetterSetFromCounts_IgnoresNegative(t *testing.T) {
	set := LetterSetFromCounts(map[byte]int{'A': 2, 'B': -3})

	assert.Equal(t, 2, set.Count('A'))
	assert.Equal(t, 0, set.Count('B'))
}

func TestLetterSet_IsEmpty(t *testing.T) {
	var empty LetterSet
	assert.True(t, empty.IsEmpty())

	set := NewLetterSet("A")
	assert.False(t, set.IsEmpty())

	require.NoError(t, set.Subtract(NewLetterSet("a")))
	assert.True(t, set.IsEmpty())
}
