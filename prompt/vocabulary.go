// Package prompt builds the instruction block sent ahead of the conversation
// and owns the section vocabulary shared with the sections extractor.
//
// The labels listed here are the only contract between what the model is asked
// to emit and what can be parsed back out of its reply, so both sides read them
// from this file.
package prompt

import "siaga/model"

// SectionSpec describes one labeled block of a structured reply.
type SectionSpec struct {
	// Key is the stable identifier used by renderers.
	Key string
	// Title is the heading shown in the UI.
	Title string
	// Label is the literal line the model is asked to write.
	Label string
	// Markers are the accepted spellings of the section start. Markers[0] is
	// the short form used to detect whether a reply is structured at all.
	Markers []string
}

const (
	SectionSummary    = "situation-summary"
	SectionSteps      = "immediate-steps"
	SectionMessage    = "quick-message"
	SectionTriggers   = "conditional-triggers"
	SectionWarnings   = "warnings"
	SectionGoBag      = "go-bag-checklist"
	SectionHomePrep   = "home-prep-checklist"
	SectionEvacuation = "evacuation-plan"
	SectionSevenDay   = "seven-day-plan"
)

var nowActionSections = []SectionSpec{
	{
		Key:     SectionSummary,
		Title:   "Ringkasan situasi",
		Label:   "Ringkasan situasi:",
		Markers: []string{"Ringkasan situasi", "Ringkasan situasi:"},
	},
	{
		Key:     SectionSteps,
		Title:   "✅ Langkah 0–10 menit",
		Label:   "✅ Langkah 0–10 menit (1–5):",
		Markers: []string{"✅ Langkah 0–10 menit", "✅ Langkah 0–10 menit (1–5)", "✅ Langkah 0–10 menit (1–5):"},
	},
	{
		Key:     SectionMessage,
		Title:   "📣 Pesan cepat",
		Label:   "📣 Pesan cepat (Keluarga + RT/Posko):",
		Markers: []string{"📣 Pesan cepat", "📣 Pesan cepat (Keluarga + RT/Posko)", "📣 Pesan cepat (Keluarga + RT/Posko):"},
	},
	{
		Key:     SectionTriggers,
		Title:   "🔁 Jika… maka…",
		Label:   "🔁 Jika... maka... (triggers):",
		Markers: []string{"🔁 Jika", "🔁 Jika... maka... (triggers)", "🔁 Jika... maka... (triggers):"},
	},
	{
		Key:     SectionWarnings,
		Title:   "⚠️ Peringatan",
		Label:   "⚠️ Peringatan singkat (maks 3):",
		Markers: []string{"⚠️ Peringatan", "⚠️ Peringatan singkat", "⚠️ Peringatan singkat (maks 3)", "⚠️ Peringatan singkat (maks 3):"},
	},
}

var preparednessSections = []SectionSpec{
	{
		Key:     SectionGoBag,
		Title:   "🎒 Go Bag checklist",
		Label:   "🎒 Go Bag checklist:",
		Markers: []string{"🎒 Go Bag", "🎒 Go Bag checklist", "🎒 Go Bag checklist:"},
	},
	{
		Key:     SectionHomePrep,
		Title:   "🏠 Home prep checklist",
		Label:   "🏠 Home prep checklist:",
		Markers: []string{"🏠 Home prep", "🏠 Home prep checklist", "🏠 Home prep checklist:"},
	},
	{
		Key:     SectionEvacuation,
		Title:   "🗺️ Rencana evakuasi",
		Label:   "🗺️ Rencana evakuasi:",
		Markers: []string{"🗺️ Rencana evakuasi", "🗺️ Rencana evakuasi:"},
	},
	{
		Key:     SectionSevenDay,
		Title:   "📅 Rencana 7 hari",
		Label:   "📅 Rencana 7 hari:",
		Markers: []string{"📅 Rencana 7 hari", "📅 Rencana 7 hari:"},
	},
}

// Vocabulary returns the ordered section specs for a mode. The returned slice
// must not be modified.
func Vocabulary(mode model.Mode) []SectionSpec {
	if mode == model.ModePreparednessPlan {
		return preparednessSections
	}
	return nowActionSections
}

// DetectionMarkers returns the short marker of every section of a mode.
func DetectionMarkers(mode model.Mode) []string {
	specs := Vocabulary(mode)
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.Markers[0]
	}
	return out
}
