package transpose

import (
	"strings"

	"github.com/chordsmith/chordsmith/chord"
	"github.com/chordsmith/chordsmith/theory"
)

// Chord shifts a single chord by the given number of semitones, re-spelling
// the root (and slash bass, if present) from the sharp or flat table. The
// quality suffix is never altered. A zero shift or blank input is returned
// unchanged without parsing. Input whose root is not a recognized note
// degrades to the original text.
func Chord(c string, semitones int, useFlats bool) string {
	if semitones == 0 || strings.TrimSpace(c) == "" {
		return c
	}

	parsed := chord.Parse(c)
	root, err := theory.PitchClassOf(parsed.Root)
	if err != nil {
		return c
	}

	out := theory.Spell(root+semitones, useFlats) + parsed.Quality
	if parsed.Bass != "" {
		if bass, err := theory.PitchClassOf(parsed.Bass); err == nil {
			out += "/" + theory.Spell(bass+semitones, useFlats)
		} else {
			out += "/" + parsed.Bass
		}
	}
	return out
}

// Chords transposes a list of chords element-wise. A zero shift returns the
// input slice as-is with no per-element work.
func Chords(chords []string, semitones int) []string {
	if semitones == 0 {
		return chords
	}
	out := make([]string, len(chords))
	for i, c := range chords {
		out[i] = Chord(c, semitones, false)
	}
	return out
}

// Lyrics transposes every bracketed chord token in chord-annotated lyric
// text, line by line. Both standalone chord lines and inline-annotated lines
// are handled; lines without recognizable chord tokens pass through
// unmodified. A zero shift short-circuits the whole text.
func Lyrics(text string, semitones int) string {
	if semitones == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = transposeLine(line, semitones)
	}
	return strings.Join(lines, "\n")
}

// transposeLine walks the line once, copying text outside brackets verbatim
// and transposing bracketed tokens that look like chords. Bracketed tokens
// that are not chord-shaped (section labels, stage directions) are left
// untouched. Cost is linear in line length.
func transposeLine(line string, semitones int) string {
	if !strings.Contains(line, "[") {
		return line
	}

	var b strings.Builder
	b.Grow(len(line) + 8)

	i := 0
	for i < len(line) {
		open := strings.IndexByte(line[i:], '[')
		if open < 0 {
			b.WriteString(line[i:])
			break
		}
		open += i
		b.WriteString(line[i:open])

		end := strings.IndexByte(line[open:], ']')
		if end < 0 {
			// Unterminated bracket, copy the rest as-is
			b.WriteString(line[open:])
			break
		}
		end += open

		token := line[open+1 : end]
		if chord.IsChordLike(token) {
			b.WriteByte('[')
			b.WriteString(Chord(token, semitones, false))
			b.WriteByte(']')
		} else {
			b.WriteString(line[open : end+1])
		}
		i = end + 1
	}

	return b.String()
}
