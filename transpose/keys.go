package transpose

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/chordsmith/chordsmith/chord"
	"github.com/chordsmith/chordsmith/logging"
	"github.com/chordsmith/chordsmith/theory"
)

// Confidence buckets key detection by the amount of evidence available.
// This is a cardinality heuristic over the input chord count, not a
// music-theoretic measure.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// KeyDetection is the result of chord-based key inference
type KeyDetection struct {
	Key        string     `json:"key"`        // Best key estimate
	Confidence Confidence `json:"confidence"` // Evidence-based confidence bucket
	Candidates []string   `json:"candidates"` // Ranked candidate keys, deduplicated
	Profile    []float64  `json:"profile"`    // Normalized root pitch-class histogram
}

// KeyDetectionParams contains parameters for key detection
type KeyDetectionParams struct {
	MaxCandidates  int `json:"max_candidates"`  // Cap on returned candidates
	LowEvidence    int `json:"low_evidence"`    // Chord count at or below which confidence is low
	MediumEvidence int `json:"medium_evidence"` // Chord count at or below which confidence is medium
}

// DefaultKeyDetectionParams returns the parameter values the detection
// output format was tuned against.
func DefaultKeyDetectionParams() KeyDetectionParams {
	return KeyDetectionParams{
		MaxCandidates:  5,
		LowEvidence:    5,
		MediumEvidence: 10,
	}
}

// DetectKey infers the most likely key from an unordered bag of chords
// using default parameters.
func DetectKey(chords []string) KeyDetection {
	return DetectKeyWithParams(chords, DefaultKeyDetectionParams())
}

// DetectKeyWithParams tallies root-note frequency across the chord list,
// ranks candidate keys by root frequency, and biases toward the minor
// spelling when every chord signals minor and none signal major. Empty or
// entirely unparsable input degrades to C major with low confidence and all
// 12 major keys as candidates.
func DetectKeyWithParams(chords []string, params KeyDetectionParams) KeyDetection {
	counts := make([]float64, 12)
	var firstSeen [12]int
	hasMinor := false
	hasMajor := false

	for i, token := range chords {
		parsed := chord.Parse(token)
		pc, err := theory.PitchClassOf(parsed.Root)
		if err != nil {
			continue
		}
		if counts[pc] == 0 {
			firstSeen[pc] = i
		}
		counts[pc]++

		if strings.Contains(parsed.Quality, "m") && !strings.Contains(parsed.Quality, "maj") {
			hasMinor = true
		} else {
			hasMajor = true
		}
	}

	total := floats.Sum(counts)
	if total == 0 {
		return emptyDetection()
	}

	profile := make([]float64, 12)
	copy(profile, counts)
	floats.Scale(1/total, profile)

	// Rank roots by descending frequency; ties keep input encounter order.
	var roots []int
	for pc := range counts {
		if counts[pc] > 0 {
			roots = append(roots, pc)
		}
	}
	sort.SliceStable(roots, func(i, j int) bool {
		if counts[roots[i]] != counts[roots[j]] {
			return counts[roots[i]] > counts[roots[j]]
		}
		return firstSeen[roots[i]] < firstSeen[roots[j]]
	})

	var candidates []string
	seen := make(map[string]bool)
	for _, pc := range roots {
		for _, name := range keyNamesForPitchClass(pc) {
			if !seen[name] {
				seen[name] = true
				candidates = append(candidates, name)
			}
		}
	}
	if len(candidates) > params.MaxCandidates {
		candidates = candidates[:params.MaxCandidates]
	}

	detected := candidates[0]
	if hasMinor && !hasMajor {
		if minor, ok := minorKeyForPitchClass(roots[0]); ok {
			detected = minor.Name
		}
	}

	result := KeyDetection{
		Key:        detected,
		Confidence: confidenceFor(len(chords), params),
		Candidates: candidates,
		Profile:    profile,
	}

	logging.Debug("key detected from chords", logging.Fields{
		"key":        result.Key,
		"confidence": result.Confidence,
		"chords":     len(chords),
	})

	return result
}

// KeyDistance computes the signed semitone shift from one key to another,
// ignoring minor suffixes and wrapping into [-6, 6] so the result is always
// the shortest path around the 12-tone circle.
func KeyDistance(from, to string) (int, error) {
	fromPC, err := keyRootPitchClass(from)
	if err != nil {
		return 0, err
	}
	toPC, err := keyRootPitchClass(to)
	if err != nil {
		return 0, err
	}

	d := toPC - fromPC
	if d > 6 {
		d -= 12
	}
	if d < -6 {
		d += 12
	}
	return d, nil
}

// KeySuggestion pairs a beginner-friendly key with its semitone distance
// from the current key.
type KeySuggestion struct {
	Key      string `json:"key"`
	Distance int    `json:"distance"`
}

// easyKeys is the fixed beginner set, in preference order for distance ties.
var easyKeys = []string{"G", "C", "D", "A", "E", "Am", "Em", "Dm"}

// SuggestEasyKeys ranks the beginner key set by ascending absolute distance
// from the current key. The sort is stable, so ties keep the set's original
// order. An unrecognized current key yields an empty list.
func SuggestEasyKeys(current string) []KeySuggestion {
	out := make([]KeySuggestion, 0, len(easyKeys))
	for _, k := range easyKeys {
		d, err := KeyDistance(current, k)
		if err != nil {
			logging.Warn("skipping easy-key suggestion", logging.Fields{"key": current})
			return out
		}
		out = append(out, KeySuggestion{Key: k, Distance: d})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return abs(out[i].Distance) < abs(out[j].Distance)
	})
	return out
}

func keyRootPitchClass(key string) (int, error) {
	root := strings.TrimSuffix(strings.TrimSpace(key), "m")
	return theory.PitchClassOf(root)
}

func keyNamesForPitchClass(pc int) []string {
	names := make([]string, 0, 2)
	for _, k := range theory.MajorKeys {
		if k.PitchClass == pc {
			names = append(names, k.Name)
			break
		}
	}
	if minor, ok := minorKeyForPitchClass(pc); ok {
		names = append(names, minor.Name)
	}
	return names
}

func minorKeyForPitchClass(pc int) (theory.Key, bool) {
	for _, k := range theory.MinorKeys {
		if k.PitchClass == pc {
			return k, true
		}
	}
	return theory.Key{}, false
}

func emptyDetection() KeyDetection {
	candidates := make([]string, len(theory.MajorKeys))
	for i, k := range theory.MajorKeys {
		candidates[i] = k.Name
	}
	return KeyDetection{
		Key:        "C",
		Confidence: ConfidenceLow,
		Candidates: candidates,
		Profile:    make([]float64, 12),
	}
}

func confidenceFor(chordCount int, params KeyDetectionParams) Confidence {
	switch {
	case chordCount <= params.LowEvidence:
		return ConfidenceLow
	case chordCount <= params.MediumEvidence:
		return ConfidenceMedium
	default:
		return ConfidenceHigh
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
