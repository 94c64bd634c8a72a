package ui

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	markdown "github.com/MichaelMure/go-term-markdown"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/mattn/go-runewidth"

	"siaga/config"
	"siaga/model"
	"siaga/prompt"
	"siaga/sections"
)

var (
	inlineCodeRegex = regexp.MustCompile(`(?s)\x1b\[44;3m(.*?)\x1b\[0m`)
	mdLinkRegex     = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\)]+)\)`)
	urlRegex        = regexp.MustCompile(`(https?://[^\s]+)`)
	ansiRegex       = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

const codeBar = "┃"

func (a *AppView) updateViewportContent(gotoBottom bool) {
	history := a.session.History
	if len(history) == 0 && !a.busy {
		a.viewport.SetContent(a.emptyState())
		return
	}

	var content strings.Builder

	for i := range history {
		msg := &history[i]
		if msg.Rendered == "" {
			msg.Rendered = a.renderMessage(*msg)
		}

		timestamp := DimStyle.Render(msg.Timestamp.Format("[15:04]"))

		if msg.Role == model.RoleUser {
			content.WriteString(formatUserMessage(timestamp, UserStyle.Render("Kamu"), msg.Rendered))
			continue
		}

		role := AssistantStyle.Render("Asisten")
		content.WriteString(fmt.Sprintf("%s %s\n%s\n\n", timestamp, role, msg.Rendered))
	}

	if a.busy {
		timestamp := DimStyle.Render(time.Now().Format("[15:04]"))
		role := AssistantStyle.Render("Asisten")
		content.WriteString(fmt.Sprintf("%s %s\n%s %s\n\n", timestamp, role, a.loadingSpinner.View(), DimStyle.Render("Menyusun jawaban...")))
	}

	a.viewport.SetContent(content.String())
	if gotoBottom {
		a.viewport.GotoBottom()
	}
}

// invalidateRendered drops cached renderings, e.g. after a resize or a mode
// switch changes how replies are split.
func (a *AppView) invalidateRendered() {
	for i := range a.session.History {
		a.session.History[i].Rendered = ""
	}
}

func (a AppView) emptyState() string {
	mode := a.session.Settings.Mode
	lines := []string{
		TitleStyle.Render(mode.DisplayName()),
		DimStyle.Render(mode.Description()),
		"",
	}
	if mode == model.ModePreparednessPlan {
		lines = append(lines, "Contoh: \"rumah 2 lantai, ada lansia, punya motor\"")
	} else {
		lines = append(lines,
			"Contoh: \"barusan gempa, saya di apartemen lantai 10\"",
			"        \"air mulai naik di rumah\"",
		)
	}
	return strings.Join(lines, "\n")
}

func (a AppView) renderMessage(msg model.Message) string {
	width := a.contentWidth()
	if msg.Role == model.RoleUser {
		return wrapText(msg.Content, width-2)
	}
	return renderAssistant(msg.Content, a.session.Settings.Mode, width)
}

func (a AppView) contentWidth() int {
	if a.width < 24 {
		return 80
	}
	return a.width
}

// renderAssistant renders a reply as the sections of the active mode. Replies
// without any section label are shown as plain markdown.
func renderAssistant(raw string, mode model.Mode, width int) string {
	start := time.Now()
	res := sections.Extract(raw, mode)
	if res.Unstructured {
		return renderMarkdown(raw, width)
	}

	var blocks []string
	for _, s := range res.Present() {
		blocks = append(blocks, renderSection(s, width))
	}
	if len(blocks) == 0 {
		return renderMarkdown(raw, width)
	}

	config.Debugf("[UI] Rendered %d/%d sections in %v", len(blocks), len(res.Sections), time.Since(start))
	return strings.Join(blocks, "\n\n")
}

func renderSection(s sections.Section, width int) string {
	switch s.Key {
	case prompt.SectionSummary:
		return sectionBox(boxInfo, s.Title, renderMarkdown(s.Body, width-6), width)
	case prompt.SectionMessage:
		block := renderMarkdownLabeled("```\n"+s.Body+"\n```", width, "[pesan cepat]")
		return TitleStyle.Render(s.Title) + "\n" + block
	case prompt.SectionTriggers:
		return sectionBox(boxWarning, s.Title, renderMarkdown(s.Body, width-6), width)
	case prompt.SectionWarnings:
		return sectionBox(boxDanger, s.Title, renderMarkdown(s.Body, width-6), width)
	default:
		return TitleStyle.Render(s.Title) + "\n" + renderMarkdown(s.Body, width)
	}
}

// renderMarkdown renders markdown for the terminal with go-term-markdown.
// Autolink stays off so URLs remain plain text for the terminal to detect.
func renderMarkdown(content string, width int) string {
	return renderMarkdownLabeled(content, width, "[code]")
}

// renderMarkdownLabeled is renderMarkdown with a custom code block label.
func renderMarkdownLabeled(content string, width int, codeLabel string) string {
	if width < 20 {
		width = 20
	}
	content = preprocessLinks(content)

	ext := markdown.Extensions() &^ parser.Autolink
	p := parser.NewWithExtensions(ext)
	r := markdown.NewRenderer(width-4, 0)
	doc := p.Parse([]byte(content))
	rendered := string(gomarkdown.Render(doc, r))

	return strings.Trim(postProcessMarkdown(rendered, width, codeLabel), "\n")
}

func formatUserMessage(timestamp, role, content string) string {
	bar := UserStyle.Render("┃")

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s %s %s\n", bar, timestamp, role))
	for _, line := range strings.Split(content, "\n") {
		result.WriteString(fmt.Sprintf("%s %s\n", bar, line))
	}
	result.WriteString("\n")

	return result.String()
}

func postProcessMarkdown(rendered string, width int, codeLabel string) string {
	rendered = fixInlineCode(rendered)
	rendered = colorURLs(rendered)
	return frameCodeBlocks(rendered, width, codeLabel)
}

// preprocessLinks strips [text](url) down to the url.
func preprocessLinks(content string) string {
	return mdLinkRegex.ReplaceAllString(content, "$2")
}

// fixInlineCode swaps go-term-markdown's blue-background inline code for red text.
func fixInlineCode(s string) string {
	return inlineCodeRegex.ReplaceAllString(s, "\x1b[31m$1\x1b[0m")
}

func colorURLs(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if !strings.Contains(line, codeBar) {
			lines[i] = urlRegex.ReplaceAllString(line, "\x1b[31m$1\x1b[0m")
		}
	}
	return strings.Join(lines, "\n")
}

// frameCodeBlocks replaces the ┃ gutter of rendered code blocks with a
// horizontal frame carrying label in the top border.
func frameCodeBlocks(s string, width int, label string) string {
	lines := strings.Split(s, "\n")
	var result []string
	inCodeBlock := false

	darkGray := "\x1b[90m"
	reset := "\x1b[0m"
	lineLen := width - 4
	if lineLen < runewidth.StringWidth(label)+2 {
		lineLen = runewidth.StringWidth(label) + 2
	}

	closeBlock := func() {
		result = append(result, "", darkGray+strings.Repeat("━", lineLen)+reset, "")
	}

	for _, line := range lines {
		if strings.Contains(line, codeBar) {
			if !inCodeBlock {
				inCodeBlock = true
				leftLen := (lineLen - runewidth.StringWidth(label)) / 2
				rightLen := lineLen - runewidth.StringWidth(label) - leftLen
				border := darkGray + strings.Repeat("━", leftLen) + reset + label + darkGray + strings.Repeat("━", rightLen) + reset
				result = append(result, "", border, "")
			}
			result = append(result, stripCodeBlockPrefix(line))
			continue
		}

		if inCodeBlock {
			closeBlock()
			inCodeBlock = false
		}
		result = append(result, line)
	}

	if inCodeBlock {
		closeBlock()
	}

	return strings.Join(result, "\n")
}

func stripCodeBlockPrefix(line string) string {
	idx := strings.Index(line, codeBar)
	if idx < 0 {
		return line
	}
	after := idx + len(codeBar)
	// the gutter is colored; skip its reset sequence and the following space
	rest := line[after:]
	rest = strings.TrimPrefix(rest, "\x1b[0m")
	return strings.TrimPrefix(rest, " ")
}

// wrapText wraps plain text to width display cells, keeping existing newlines.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		var line strings.Builder
		lineWidth := 0
		for _, word := range words {
			w := runewidth.StringWidth(word)
			for w > width {
				// hard-break words longer than a line
				if lineWidth > 0 {
					out = append(out, line.String())
					line.Reset()
					lineWidth = 0
				}
				chunk := runewidth.Truncate(word, width, "")
				if chunk == "" {
					_, size := utf8.DecodeRuneInString(word)
					chunk = word[:size]
				}
				out = append(out, chunk)
				word = word[len(chunk):]
				w = runewidth.StringWidth(word)
			}
			if w == 0 {
				continue
			}
			if lineWidth > 0 && lineWidth+1+w > width {
				out = append(out, line.String())
				line.Reset()
				lineWidth = 0
			}
			if lineWidth > 0 {
				line.WriteString(" ")
				lineWidth++
			}
			line.WriteString(word)
			lineWidth += w
		}
		if lineWidth > 0 {
			out = append(out, line.String())
		}
	}
	return strings.Join(out, "\n")
}

// truncate shortens s to width display cells.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", float64(d.Milliseconds())/1000.0)
}
