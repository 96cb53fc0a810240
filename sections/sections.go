package sections

import (
	"regexp"
	"strings"
)

// Type identifies the structural role of a lyric section
type Type string

const (
	TypeIntro     Type = "intro"
	TypeVerse     Type = "verse"
	TypePreChorus Type = "pre-chorus"
	TypeChorus    Type = "chorus"
	TypeBridge    Type = "bridge"
	TypeOutro     Type = "outro"
	TypeOther     Type = "other"
)

// Section is one structural block of lyric text. Sections are built fresh
// on every Parse call and never mutated after construction.
type Section struct {
	Type    Type   `json:"type"`
	Content string `json:"content"`
}

// IsChorus reports whether the section is a chorus. Pre-chorus does not
// count.
func (s Section) IsChorus() bool {
	return s.Type == TypeChorus
}

// headerPattern recognizes section header lines case-insensitively, with an
// optional numeral, optional surrounding brackets, and an optional trailing
// colon: "[Verse 2]", "chorus:", "Pre-Chorus". The pre-chorus alternative
// must precede chorus so it is not swallowed by the shorter match.
var headerPattern = regexp.MustCompile(`(?i)^\s*\[?\s*(intro|verse|pre[\s-]?chorus|chorus|bridge|outro)\s*(\d+)?\s*\]?\s*:?\s*$`)

// Parse segments lyric text on recognized header lines. A new section starts
// whenever a header line matches; the previous section is flushed only if it
// has non-blank content. Text before the first header becomes an "other"
// section. The final section is flushed unconditionally, so a trailing
// header with no body yields a blank section.
func Parse(lyrics string) []Section {
	var out []Section
	var current *Section

	for _, line := range strings.Split(lyrics, "\n") {
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			if current != nil && strings.TrimSpace(current.Content) != "" {
				out = append(out, flush(*current))
			}
			current = &Section{Type: normalizeType(m[1])}
			continue
		}

		if current == nil {
			if strings.TrimSpace(line) == "" {
				continue
			}
			current = &Section{Type: TypeOther}
		}
		if current.Content != "" {
			current.Content += "\n"
		}
		current.Content += line
	}

	if current != nil {
		out = append(out, flush(*current))
	}
	return out
}

// Count returns the number of sections detected in the lyric text.
func Count(lyrics string) int {
	return len(Parse(lyrics))
}

// IsHeader reports whether a single line is a recognized section header.
func IsHeader(line string) bool {
	return headerPattern.MatchString(line)
}

func flush(s Section) Section {
	s.Content = strings.TrimSpace(s.Content)
	return s
}

func normalizeType(header string) Type {
	name := strings.ToLower(strings.TrimSpace(header))
	if strings.HasPrefix(name, "pre") {
		return TypePreChorus
	}
	switch Type(name) {
	case TypeIntro, TypeVerse, TypeChorus, TypeBridge, TypeOutro:
		return Type(name)
	default:
		return TypeOther
	}
}
