// Package sections splits a free-form model reply into the labeled sections
// requested by the prompt composer.
//
// Extraction is heuristic: the model is only asked to follow a textual format.
// A missing section is simply absent, and a reply that contains none of the
// expected markers is reported as unstructured so the caller can show it as is.
package sections

import (
	"strings"

	"siaga/model"
	"siaga/prompt"
)

// Section is one extracted block of a reply.
type Section struct {
	Key   string
	Title string
	Label string
	Body  string
	Found bool
}

// Result is the derived view of one assistant reply. It is never stored; the
// raw text is.
type Result struct {
	Mode         model.Mode
	Raw          string
	Unstructured bool
	Sections     []Section // one entry per vocabulary section, in order
}

// Present returns the sections that were found and have a non-empty body.
func (r Result) Present() []Section {
	var out []Section
	for _, s := range r.Sections {
		if s.Found && s.Body != "" {
			out = append(out, s)
		}
	}
	return out
}

// Get returns the section with the given key.
func (r Result) Get(key string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Key == key {
			return s, s.Found
		}
	}
	return Section{}, false
}

// Extract splits raw into the sections of mode's vocabulary.
func Extract(raw string, mode model.Mode) Result {
	res := Result{Mode: mode, Raw: raw}

	if !containsAny(raw, prompt.DetectionMarkers(mode)) {
		res.Unstructured = true
		return res
	}

	specs := prompt.Vocabulary(mode)
	res.Sections = make([]Section, len(specs))
	for i, spec := range specs {
		// A section ends where any later section starts, so a missing middle
		// section never truncates the one before it.
		var ends []string
		for _, later := range specs[i+1:] {
			ends = append(ends, later.Markers...)
		}

		body, found := extractSection(raw, spec.Markers, ends)
		res.Sections[i] = Section{
			Key:   spec.Key,
			Title: spec.Title,
			Label: spec.Label,
			Body:  body,
			Found: found,
		}
	}

	return res
}

// Reassemble renders the present sections back into labeled text, one label
// line followed by its body. Extracting the output again yields the same bodies.
func Reassemble(r Result) string {
	if r.Unstructured {
		return r.Raw
	}

	var b strings.Builder
	for _, s := range r.Present() {
		b.WriteString(s.Label)
		b.WriteString("\n")
		b.WriteString(s.Body)
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// extractSection finds the leftmost start marker, skips the rest of its line
// and returns everything up to the leftmost end marker (or end of text).
func extractSection(text string, starts, ends []string) (string, bool) {
	startIdx, marker := leftmost(text, starts, 0)
	if startIdx < 0 {
		return "", false
	}

	bodyStart := startIdx + len(marker)
	if nl := strings.IndexByte(text[startIdx:], '\n'); nl >= 0 {
		bodyStart = startIdx + nl + 1
	}

	endIdx, _ := leftmost(text, ends, bodyStart)
	if endIdx < 0 {
		return strings.TrimSpace(text[bodyStart:]), true
	}
	return trimBeforeLabel(text[bodyStart:endIdx]), true
}

// leftmost returns the earliest position at or after from where any marker
// occurs. On a tie the longer marker wins.
func leftmost(text string, markers []string, from int) (int, string) {
	if from > len(text) {
		return -1, ""
	}

	best := -1
	bestMarker := ""
	for _, m := range markers {
		if m == "" {
			continue
		}
		i := strings.Index(text[from:], m)
		if i < 0 {
			continue
		}
		i += from
		if best < 0 || i < best || (i == best && len(m) > len(bestMarker)) {
			best = i
			bestMarker = m
		}
	}
	return best, bestMarker
}

// trimBeforeLabel trims a body that stops at the next label. A trailing line
// made only of markdown heading/emphasis characters is the opening of that
// label ("**Label**", "## Label") and is dropped too.
func trimBeforeLabel(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		if strings.Trim(s[i+1:], "#*_ \t") == "" {
			s = strings.TrimSpace(s[:i])
		}
	} else if strings.Trim(s, "#*_ \t") == "" {
		s = ""
	}
	return s
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(text, m) {
			return true
		}
	}
	return false
}
