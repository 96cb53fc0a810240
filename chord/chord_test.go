package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Chord
	}{
		{"C", Chord{Root: "C"}},
		{"Am", Chord{Root: "A", Quality: "m"}},
		{"F#m7", Chord{Root: "F#", Quality: "m7"}},
		{"Bbmaj7", Chord{Root: "Bb", Quality: "maj7"}},
		{"Dsus4", Chord{Root: "D", Quality: "sus4"}},
		{"Gadd9", Chord{Root: "G", Quality: "add9"}},
		{"C/E", Chord{Root: "C", Bass: "E"}},
		{"Dsus4/F#", Chord{Root: "D", Quality: "sus4", Bass: "F#"}},
		{"Am7/G", Chord{Root: "A", Quality: "m7", Bass: "G"}},
		{" G7 ", Chord{Root: "G", Quality: "7"}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Parse(tc.in), "input %q", tc.in)
	}
}

func TestParseNeverFails(t *testing.T) {
	// Unparsable input degrades to the original text as the root
	cases := []struct {
		in   string
		want Chord
	}{
		{"hello", Chord{Root: "hello"}},
		{"", Chord{}},
		{"H7", Chord{Root: "H7"}},
		{"123", Chord{Root: "123"}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Parse(tc.in), "input %q", tc.in)
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, in := range []string{"C", "Am", "F#m7", "Bbmaj7", "C/E", "Dsus4/F#", "Am7/G"} {
		assert.Equal(t, in, Parse(in).Name())
	}
}

func TestIsChordLike(t *testing.T) {
	chordLike := []string{
		"C", "Am", "F#", "Bb", "G7", "Cmaj7", "Am7", "Dsus4", "Gadd9",
		"C9", "D11", "E13", "Bdim", "Caug", "A/C#", "Em7/B", " C ",
	}
	for _, in := range chordLike {
		assert.True(t, IsChordLike(in), "expected %q to be chord-like", in)
	}

	notChordLike := []string{
		"", "hello", "H", "Cat", "chorus", "Verse 1", "Amz", "C majj",
		"A#b", "C/", "/E", "C//E",
	}
	for _, in := range notChordLike {
		assert.False(t, IsChordLike(in), "expected %q not to be chord-like", in)
	}
}
