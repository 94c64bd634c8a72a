package sections

import (
	"strings"
	"testing"

	"siaga/model"
	"siaga/prompt"
)

// reply builds a reply from label/body pairs using the vocabulary labels.
func reply(mode model.Mode, bodies map[string]string) string {
	var b strings.Builder
	for _, spec := range prompt.Vocabulary(mode) {
		body, ok := bodies[spec.Key]
		if !ok {
			continue
		}
		b.WriteString(spec.Label + "\n" + body + "\n\n")
	}
	return b.String()
}

func label(mode model.Mode, key string) string {
	for _, spec := range prompt.Vocabulary(mode) {
		if spec.Key == key {
			return spec.Label
		}
	}
	return ""
}

func TestExtractNowAction(t *testing.T) {
	bodies := map[string]string{
		prompt.SectionSummary:  "Air semata kaki di lantai 1.",
		prompt.SectionSteps:    "1. Matikan MCB dari titik kering.\n2. Naikkan dokumen.",
		prompt.SectionMessage:  "Air masuk rumah, kami aman.",
		prompt.SectionTriggers: "- Jika air sampai lutut, maka naik ke lantai 2.",
		prompt.SectionWarnings: "- Jangan sentuh stop kontak basah.",
	}
	raw := "Oke, ini langkahnya.\n\n" + reply(model.ModeNowAction, bodies)

	res := Extract(raw, model.ModeNowAction)
	if res.Unstructured {
		t.Fatal("expected structured result")
	}
	if res.Raw != raw {
		t.Error("Raw must be the untouched reply")
	}

	present := res.Present()
	wantOrder := []string{
		prompt.SectionSummary, prompt.SectionSteps, prompt.SectionMessage,
		prompt.SectionTriggers, prompt.SectionWarnings,
	}
	if len(present) != len(wantOrder) {
		t.Fatalf("present = %d sections, want %d", len(present), len(wantOrder))
	}
	for i, s := range present {
		if s.Key != wantOrder[i] {
			t.Errorf("section %d = %q, want %q", i, s.Key, wantOrder[i])
		}
		if s.Body != bodies[s.Key] {
			t.Errorf("%s body = %q, want %q", s.Key, s.Body, bodies[s.Key])
		}
	}
}

func TestExtractBodiesExcludeLaterMarkers(t *testing.T) {
	raw := reply(model.ModeNowAction, map[string]string{
		prompt.SectionSummary:  "ringkas",
		prompt.SectionSteps:    "langkah",
		prompt.SectionWarnings: "awas",
	})

	res := Extract(raw, model.ModeNowAction)
	for _, s := range res.Present() {
		for _, spec := range prompt.Vocabulary(model.ModeNowAction) {
			if spec.Key == s.Key {
				continue
			}
			if strings.Contains(s.Body, spec.Markers[0]) {
				t.Errorf("%s body contains marker of %s: %q", s.Key, spec.Key, s.Body)
			}
		}
	}
}

func TestExtractCanonicalOrderRegardlessOfReplyOrder(t *testing.T) {
	// model wrote warnings before the summary
	raw := label(model.ModeNowAction, prompt.SectionWarnings) + "\nawas\n\n" +
		label(model.ModeNowAction, prompt.SectionSummary) + "\nringkas\n"

	res := Extract(raw, model.ModeNowAction)
	present := res.Present()
	if len(present) == 0 || present[0].Key != prompt.SectionSummary {
		t.Fatalf("first present section should be the summary, got %+v", present)
	}
	if s, _ := res.Get(prompt.SectionSummary); s.Body != "ringkas" {
		t.Errorf("summary body = %q", s.Body)
	}
}

func TestExtractUnstructured(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		mode model.Mode
	}{
		{"clarifying question", "Ini BANJIR atau GEMPA? Kamu sekarang di mana?", model.ModeNowAction},
		{"empty", "", model.ModeNowAction},
		{"now action labels in plan mode", reply(model.ModeNowAction, map[string]string{prompt.SectionSummary: "x"}), model.ModePreparednessPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Extract(tt.raw, tt.mode)
			if !res.Unstructured {
				t.Fatal("expected unstructured result")
			}
			if res.Raw != tt.raw {
				t.Errorf("Raw = %q, want %q", res.Raw, tt.raw)
			}
			if len(res.Present()) != 0 {
				t.Error("unstructured result should have no sections")
			}
			if Reassemble(res) != tt.raw {
				t.Error("Reassemble of unstructured result should return the raw text")
			}
		})
	}
}

func TestExtractMissingMiddleSection(t *testing.T) {
	bodies := map[string]string{
		prompt.SectionGoBag:    "- Air 3 liter\n- Senter",
		prompt.SectionHomePrep: "- Ikat lemari",
		prompt.SectionSevenDay: "- Hari 1: siapkan tas",
	}
	raw := reply(model.ModePreparednessPlan, bodies)

	res := Extract(raw, model.ModePreparednessPlan)
	home, ok := res.Get(prompt.SectionHomePrep)
	if !ok {
		t.Fatal("home prep not found")
	}
	if home.Body != "- Ikat lemari" {
		t.Errorf("home prep body = %q, want it to end at the seven-day plan", home.Body)
	}
	if _, ok := res.Get(prompt.SectionEvacuation); ok {
		t.Error("evacuation should be absent")
	}
	if seven, _ := res.Get(prompt.SectionSevenDay); seven.Body != bodies[prompt.SectionSevenDay] {
		t.Errorf("seven-day body = %q", seven.Body)
	}
}

func TestExtractLabelVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "bold labels",
			raw:  "**Ringkasan situasi:**\nAman.\n\n**✅ Langkah 0–10 menit (1–5):**\n1. Tetap tenang.",
		},
		{
			name: "heading labels",
			raw:  "## Ringkasan situasi\nAman.\n\n## ✅ Langkah 0–10 menit\n1. Tetap tenang.",
		},
		{
			name: "short labels",
			raw:  "Ringkasan situasi\nAman.\n✅ Langkah 0–10 menit\n1. Tetap tenang.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Extract(tt.raw, model.ModeNowAction)
			if res.Unstructured {
				t.Fatal("expected structured result")
			}
			if s, _ := res.Get(prompt.SectionSummary); s.Body != "Aman." {
				t.Errorf("summary body = %q, want %q", s.Body, "Aman.")
			}
			if s, _ := res.Get(prompt.SectionSteps); s.Body != "1. Tetap tenang." {
				t.Errorf("steps body = %q, want %q", s.Body, "1. Tetap tenang.")
			}
		})
	}
}

func TestExtractLabelAtEndOfText(t *testing.T) {
	res := Extract("Ringkasan situasi:", model.ModeNowAction)
	s, ok := res.Get(prompt.SectionSummary)
	if !ok {
		t.Fatal("summary should be found")
	}
	if s.Body != "" {
		t.Errorf("body = %q, want empty", s.Body)
	}
	if len(res.Present()) != 0 {
		t.Error("a section with an empty body is not present")
	}
}

func TestExtractKeepsTrailingRuleAtEndOfText(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		key      string
		wantBody string
	}{
		{
			name:     "rule closing the last section",
			raw:      "Ringkasan situasi:\nAman.\n\n✅ Langkah 0–10 menit\n1. Tetap tenang.\n\n***",
			key:      prompt.SectionSteps,
			wantBody: "1. Tetap tenang.\n\n***",
		},
		{
			name:     "bold opener of the next label",
			raw:      "Ringkasan situasi:\nAman.\n***\n✅ Langkah 0–10 menit\n1. Tetap tenang.",
			key:      prompt.SectionSummary,
			wantBody: "Aman.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Extract(tt.raw, model.ModeNowAction)
			s, ok := res.Get(tt.key)
			if !ok {
				t.Fatalf("section %s not found", tt.key)
			}
			if s.Body != tt.wantBody {
				t.Errorf("body = %q, want %q", s.Body, tt.wantBody)
			}
		})
	}
}

func TestReassembleIsStable(t *testing.T) {
	raws := []string{
		reply(model.ModeNowAction, map[string]string{
			prompt.SectionSummary:  "  Air naik.  ",
			prompt.SectionSteps:    "1. Matikan listrik.\n\n\n2. Naik.",
			prompt.SectionTriggers: "- Jika hujan, maka tetap di atas.",
		}),
		"Intro\r\n" + reply(model.ModeNowAction, map[string]string{
			prompt.SectionMessage:  "\tKami aman.\n",
			prompt.SectionWarnings: "- Awas kabel.",
		}),
	}

	for i, raw := range raws {
		first := Extract(raw, model.ModeNowAction)
		second := Extract(Reassemble(first), model.ModeNowAction)

		a, b := first.Present(), second.Present()
		if len(a) != len(b) {
			t.Fatalf("case %d: present %d vs %d", i, len(a), len(b))
		}
		for j := range a {
			if a[j].Key != b[j].Key || a[j].Body != b[j].Body {
				t.Errorf("case %d section %d: %q/%q vs %q/%q", i, j, a[j].Key, a[j].Body, b[j].Key, b[j].Body)
			}
		}
	}
}

func TestComposerLabelsAreExtractable(t *testing.T) {
	for _, mode := range []model.Mode{model.ModeNowAction, model.ModePreparednessPlan} {
		t.Run(string(mode), func(t *testing.T) {
			bodies := map[string]string{}
			for _, spec := range prompt.Vocabulary(mode) {
				bodies[spec.Key] = "isi " + spec.Key
			}
			res := Extract(reply(mode, bodies), mode)

			if got := len(res.Present()); got != len(bodies) {
				t.Fatalf("present = %d, want %d", got, len(bodies))
			}
			for _, s := range res.Present() {
				if s.Body != bodies[s.Key] {
					t.Errorf("%s body = %q", s.Key, s.Body)
				}
			}
		})
	}
}
