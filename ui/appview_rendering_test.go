package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"siaga/model"
	"siaga/provider/testutil"
)

func TestFormatUserMessage(t *testing.T) {
	out := formatUserMessage("[10:00]", "Kamu", "baris satu\nbaris dua")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), out)
	}
	for _, line := range lines {
		if !strings.Contains(line, "┃") {
			t.Errorf("line %q has no gutter", line)
		}
	}
	if !strings.Contains(lines[0], "[10:00]") || !strings.Contains(lines[0], "Kamu") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.HasSuffix(out, "\n\n") {
		t.Error("message should end with a blank line")
	}
}

func TestFrameCodeBlocks(t *testing.T) {
	in := strings.Join([]string{
		"sebelum",
		"\x1b[90m┃\x1b[0m kode satu",
		"\x1b[90m┃\x1b[0m kode dua",
		"sesudah",
	}, "\n")

	out := stripANSI(frameCodeBlocks(in, 40, "[pesan cepat]"))

	if strings.Contains(out, "┃") {
		t.Errorf("gutter not removed:\n%s", out)
	}
	if !strings.Contains(out, "[pesan cepat]") {
		t.Errorf("label missing:\n%s", out)
	}
	for _, want := range []string{"kode satu", "kode dua", "sebelum", "sesudah"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "kode satu") > strings.Index(out, "sesudah") {
		t.Error("block order changed")
	}
}

func TestFrameCodeBlocksUnterminated(t *testing.T) {
	out := stripANSI(frameCodeBlocks("┃ x", 20, "[code]"))
	if strings.Count(out, "━") == 0 || !strings.HasSuffix(strings.TrimRight(out, "\n"), "━") {
		t.Errorf("open block should be closed with a rule:\n%s", out)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
	}{
		{"short", "halo", 20},
		{"words", "air mulai naik di rumah dan listrik masih menyala", 12},
		{"long word", "supercalifragilisticexpialidocious", 10},
		{"wide runes", "日本語のテキストを折り返す", 8},
		{"keeps newlines", "satu\n\ndua", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := wrapText(tt.text, tt.width)
			for _, line := range strings.Split(out, "\n") {
				if w := runewidth.StringWidth(line); w > tt.width {
					t.Errorf("line %q is %d cells, limit %d", line, w, tt.width)
				}
			}
			if strings.Join(strings.Fields(out), "") != strings.Join(strings.Fields(tt.text), "") {
				t.Errorf("content changed: %q -> %q", tt.text, out)
			}
		})
	}

	if got := wrapText("satu\n\ndua", 10); got != "satu\n\ndua" {
		t.Errorf("blank line lost: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("pendek", 10); got != "pendek" {
		t.Errorf("truncate short = %q", got)
	}
	got := truncate("meta-llama/llama-4-scout-17b-16e-instruct", 12)
	if runewidth.StringWidth(got) > 12 || !strings.HasSuffix(got, "…") {
		t.Errorf("truncate long = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(250 * time.Millisecond); got != "250ms" {
		t.Errorf("got %q", got)
	}
	if got := formatDuration(1500 * time.Millisecond); got != "1.5s" {
		t.Errorf("got %q", got)
	}
}

func TestRenderAssistant(t *testing.T) {
	t.Run("now action sections", func(t *testing.T) {
		out := stripANSI(renderAssistant(testutil.NowActionReply, model.ModeNowAction, 80))
		for _, want := range []string{
			"Ringkasan situasi",
			"Langkah 0–10 menit",
			"Pesan cepat",
			"[pesan cepat]",
			"Air masuk rumah",
			"Jika",
			"Peringatan",
			"Matikan MCB",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in:\n%s", want, out)
			}
		}
		if strings.Index(out, "Ringkasan situasi") > strings.Index(out, "Peringatan") {
			t.Error("sections out of order")
		}
	})

	t.Run("preparedness sections", func(t *testing.T) {
		out := stripANSI(renderAssistant(testutil.PreparednessReply, model.ModePreparednessPlan, 80))
		for _, want := range []string{"Go Bag checklist", "Home prep checklist", "Rencana evakuasi", "Rencana 7 hari", "Senter"} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in:\n%s", want, out)
			}
		}
	})

	t.Run("unstructured reply is shown as is", func(t *testing.T) {
		out := stripANSI(renderAssistant("Tetap tenang dan cari tempat aman.", model.ModeNowAction, 80))
		if !strings.Contains(out, "Tetap tenang dan cari tempat aman.") {
			t.Errorf("got:\n%s", out)
		}
		if strings.Contains(out, "[pesan cepat]") {
			t.Error("unstructured reply should not get a quick message frame")
		}
	})
}
