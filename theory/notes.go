package theory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNote is returned when a note spelling is not one of the 12
// recognized pitch classes. It is the only hard failure in the library;
// everything downstream degrades instead of failing.
var ErrInvalidNote = errors.New("invalid note")

// SharpNames spells each pitch class with sharps (0=C, 1=C#, ..., 11=B).
var SharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// FlatNames spells each pitch class with flats where a flat spelling is
// preferred. Pitch classes without a flat-preferred alternate keep the
// natural spelling from the sharp table.
var FlatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// flatToSharp maps flat spellings onto the canonical sharp spellings used
// for pitch class lookup.
var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

var sharpIndex = func() map[string]int {
	index := make(map[string]int, len(SharpNames))
	for pc, name := range SharpNames {
		index[name] = pc
	}
	return index
}()

// PitchClassOf resolves a note spelling to its pitch class (0-11). Flat
// spellings are normalized to sharps before lookup. Unrecognized spellings
// return ErrInvalidNote.
func PitchClassOf(note string) (int, error) {
	name := strings.TrimSpace(note)
	if sharp, ok := flatToSharp[name]; ok {
		name = sharp
	}
	pc, ok := sharpIndex[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, note)
	}
	return pc, nil
}

// Spell returns the display spelling for a pitch class from the sharp or
// flat table. The pitch class is wrapped into [0,11], so the function is
// total over all integers.
func Spell(pc int, preferFlats bool) string {
	pc = ((pc % 12) + 12) % 12
	if preferFlats {
		return FlatNames[pc]
	}
	return SharpNames[pc]
}
