package theory

import "strings"

// Mode distinguishes major keys from their relative minors
type Mode int

const (
	ModeMajor Mode = iota
	ModeMinor
)

func (m Mode) String() string {
	switch m {
	case ModeMajor:
		return "major"
	case ModeMinor:
		return "minor"
	default:
		return "unknown"
	}
}

// Key describes one of the 24 supported key signatures
type Key struct {
	Name       string `json:"name"`        // Display name, e.g. "Eb" or "Cm"
	PitchClass int    `json:"pitch_class"` // Root pitch class (0-11)
	Mode       Mode   `json:"mode"`        // Major or minor
	Sharps     int    `json:"sharps"`      // Sharps in the key signature
	Flats      int    `json:"flats"`       // Flats in the key signature
}

// PreferFlats reports whether chords in this key are conventionally spelled
// with flats rather than sharps.
func (k Key) PreferFlats() bool {
	return k.Flats > 0
}

// MajorKeys holds the 12 canonical major keys in chromatic order, spelled
// per key-signature convention (flat keys use flat names).
var MajorKeys = [12]Key{
	{Name: "C", PitchClass: 0, Mode: ModeMajor},
	{Name: "Db", PitchClass: 1, Mode: ModeMajor, Flats: 5},
	{Name: "D", PitchClass: 2, Mode: ModeMajor, Sharps: 2},
	{Name: "Eb", PitchClass: 3, Mode: ModeMajor, Flats: 3},
	{Name: "E", PitchClass: 4, Mode: ModeMajor, Sharps: 4},
	{Name: "F", PitchClass: 5, Mode: ModeMajor, Flats: 1},
	{Name: "F#", PitchClass: 6, Mode: ModeMajor, Sharps: 6},
	{Name: "G", PitchClass: 7, Mode: ModeMajor, Sharps: 1},
	{Name: "Ab", PitchClass: 8, Mode: ModeMajor, Flats: 4},
	{Name: "A", PitchClass: 9, Mode: ModeMajor, Sharps: 3},
	{Name: "Bb", PitchClass: 10, Mode: ModeMajor, Flats: 2},
	{Name: "B", PitchClass: 11, Mode: ModeMajor, Sharps: 5},
}

// MinorKeys holds the 12 relative minors, index-aligned with MajorKeys.
// Each is derived from its major: root shifted +9 semitones, same key
// signature, name spelled per the major's accidental preference plus "m".
var MinorKeys = func() [12]Key {
	var minors [12]Key
	for i, major := range MajorKeys {
		pc := (major.PitchClass + relativeMinorOffset) % 12
		minors[i] = Key{
			Name:       Spell(pc, major.PreferFlats()) + "m",
			PitchClass: pc,
			Mode:       ModeMinor,
			Sharps:     major.Sharps,
			Flats:      major.Flats,
		}
	}
	return minors
}()

// Relative key offsets in semitones (mod 12)
const (
	relativeMinorOffset = 9
	relativeMajorOffset = 3
)

// KeyByName looks up a key by display name across both key tables.
func KeyByName(name string) (Key, bool) {
	name = strings.TrimSpace(name)
	for _, k := range MajorKeys {
		if k.Name == name {
			return k, true
		}
	}
	for _, k := range MinorKeys {
		if k.Name == name {
			return k, true
		}
	}
	return Key{}, false
}

// RelativeMinor returns the relative minor key name for a major key name.
// Unknown names degrade to the input with an "m" suffix appended; this is a
// best-effort fallback, not a validated lookup.
func RelativeMinor(major string) string {
	major = strings.TrimSpace(major)
	for i, k := range MajorKeys {
		if k.Name == major {
			return MinorKeys[i].Name
		}
	}
	return major + "m"
}

// RelativeMajor returns the relative major key name for a minor key name.
// Unknown names degrade to the input with the "m" suffix stripped.
func RelativeMajor(minor string) string {
	minor = strings.TrimSpace(minor)
	for i, k := range MinorKeys {
		if k.Name == minor {
			return MajorKeys[i].Name
		}
	}
	return strings.TrimSuffix(minor, "m")
}
