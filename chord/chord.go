package chord

import (
	"regexp"
	"strings"
)

// Chord is the parsed form of a chord token: a root note, a quality suffix
// (possibly empty), and an optional slash bass.
type Chord struct {
	Root    string `json:"root"`
	Quality string `json:"quality"`
	Bass    string `json:"bass,omitempty"`
}

var (
	// chordPattern splits a token into (root)(quality)(optional /bass).
	chordPattern = regexp.MustCompile(`^([A-G][#b]?)([^/]*)(?:/([A-G][#b]?))?$`)

	// chordLikePattern is the heuristic recognizer: a root, one of the
	// recognized quality suffixes with an optional extension number, and an
	// optional slash bass. It accepts strings that are not real chords;
	// false positives only affect transposition, never validity.
	chordLikePattern = regexp.MustCompile(`^[A-G][#b]?(maj|m|dim|aug|sus|add)?[0-9]{0,2}(/[A-G][#b]?)?$`)
)

// Parse splits a chord token into root, quality, and bass. It never fails:
// input that does not look like a chord degrades to a Chord whose Root is
// the original text and whose Quality is empty.
func Parse(text string) Chord {
	token := strings.TrimSpace(text)
	m := chordPattern.FindStringSubmatch(token)
	if m == nil {
		return Chord{Root: token}
	}
	return Chord{Root: m[1], Quality: m[2], Bass: m[3]}
}

// Name reassembles the chord as root+quality[/bass].
func (c Chord) Name() string {
	name := c.Root + c.Quality
	if c.Bass != "" {
		name += "/" + c.Bass
	}
	return name
}

// IsChordLike reports whether the trimmed text matches the closed set of
// recognized chord shapes (plain, m, maj, dim, aug, sus, add, 7, maj7, m7,
// 9, 11, 13) with an optional slash bass.
func IsChordLike(text string) bool {
	return chordLikePattern.MatchString(strings.TrimSpace(text))
}
