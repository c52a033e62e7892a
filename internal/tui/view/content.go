package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/danielguerrarmz/deckfolio/internal/board"
	"github.com/danielguerrarmz/deckfolio/internal/layout"
	"github.com/danielguerrarmz/deckfolio/internal/project"
	"github.com/danielguerrarmz/deckfolio/internal/tui/styles"
	"github.com/danielguerrarmz/deckfolio/internal/util"
)

// Content renders the right-hand panel for the active project. It owns
// a glamour renderer sized to the panel width; Resize rebuilds it.
type Content struct {
	st    styles.Styles
	width int
	md    *glamour.TermRenderer
}

// NewContent builds a content renderer for the given panel width.
func NewContent(st styles.Styles, width int) *Content {
	c := &Content{st: st}
	c.Resize(width)
	return c
}

// Resize adjusts the renderer to a new panel width.
func (c *Content) Resize(width int) {
	if width < 20 {
		width = 20
	}
	c.width = width
	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width-2),
	)
	if err == nil {
		c.md = md
	}
}

// Width reports the current panel width.
func (c *Content) Width() int { return c.width }

// Render produces the panel body for the active project under the
// current board state.
func (c *Content) Render(proj project.Project, state board.State) string {
	vis := layout.VisibilityAt(state.DetailDepth)
	tier := layout.DetailTier(state.DetailDepth)

	var sections []string

	header := c.st.Title.Render(proj.Title)
	if proj.Position != "" {
		header = lipgloss.JoinVertical(lipgloss.Left, header, c.st.Label.Render(proj.Position))
	}
	header = lipgloss.JoinVertical(lipgloss.Left, header,
		c.st.Label.Render(fmt.Sprintf("DETAIL T%d", tier)))
	sections = append(sections, header)

	if vis.Overview && proj.Overview != "" {
		sections = append(sections, c.markdown(clipParagraphs(proj.Overview, tier)))
	}

	if vis.Columns && state.ViewMode == board.ViewBreakdown {
		sections = append(sections, c.columns(proj, state, tier))
	}

	if vis.Process && proj.HasTimeline {
		sections = append(sections, c.timeline(state.TimelineProgress))
	}

	if vis.Specs && state.ShowMetadata && proj.Meta != nil {
		sections = append(sections, c.metadata(proj))
	}

	body := strings.Join(sections, "\n\n")
	return c.st.Panel.Width(c.width).Render(body)
}

// columns lays out the three discipline texts side by side, each column
// sized and dimmed by its emphasis value.
func (c *Content) columns(proj project.Project, state board.State, tier int) string {
	widths := layout.Columns(
		state.ArchitectureEmphasis,
		state.ProductDesignEmphasis,
		state.SoftwareEmphasis,
	)

	inner := c.width - 6 // panel padding plus column gutters
	if inner < 12 {
		inner = 12
	}

	cols := []struct {
		title string
		text  string
		pct   float64
		value float64
	}{
		{"ARCHITECTURE", proj.Architecture, widths.Architecture, state.ArchitectureEmphasis},
		{"PRODUCT", proj.ProductDesign, widths.ProductDesign, state.ProductDesignEmphasis},
		{"SOFTWARE", proj.Software, widths.Software, state.SoftwareEmphasis},
	}

	rendered := make([]string, 0, len(cols))
	for _, col := range cols {
		w := int(col.pct / 100 * float64(inner))
		if w < 4 {
			w = 4
		}
		text := clipParagraphs(col.text, tier)
		body := wordwrap.String(text, w)
		style := c.st.EmphasisText(layout.Opacity(col.value))
		head := c.st.Label.Render(util.TruncateString(col.title, w))
		rendered = append(rendered, lipgloss.JoinVertical(lipgloss.Left, head, style.Render(body)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered[0], " ", rendered[1], " ", rendered[2])
}

// timeline renders the five-stage process strip with the current stage
// highlighted.
func (c *Content) timeline(progress float64) string {
	current := layout.StageAt(progress)

	parts := make([]string, 0, len(layout.Stages))
	for _, stage := range layout.Stages {
		label := stage.String()
		if stage == current {
			parts = append(parts, c.st.Needle.Render("▶ "+label))
		} else {
			parts = append(parts, c.st.Label.Render(label))
		}
	}
	return strings.Join(parts, c.st.Label.Render(" ─ "))
}

// metadata renders the footer record.
func (c *Content) metadata(proj project.Project) string {
	m := proj.Meta

	var lines []string
	if m.Date != "" {
		lines = append(lines, fmt.Sprintf("DATE      %s", m.Date))
	}
	if m.Duration != "" {
		lines = append(lines, fmt.Sprintf("DURATION  %s", m.Duration))
	}
	if len(m.Tools) > 0 {
		lines = append(lines, fmt.Sprintf("TOOLS     %s", strings.Join(m.Tools, ", ")))
	}
	if len(m.Collaborators) > 0 {
		lines = append(lines, fmt.Sprintf("WITH      %s", strings.Join(m.Collaborators, ", ")))
	}
	if proj.Link != "" {
		lines = append(lines, fmt.Sprintf("LINK      %s", proj.Link))
	}
	for i, line := range lines {
		lines[i] = util.TruncateString(line, c.width-4)
	}
	return c.st.Label.Render(strings.Join(lines, "\n"))
}

// markdown renders text through glamour, falling back to a plain
// word-wrap when the renderer is unavailable.
func (c *Content) markdown(text string) string {
	if c.md != nil {
		if out, err := c.md.Render(text); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return wordwrap.String(text, c.width-2)
}

// clipParagraphs keeps the first tier paragraphs of text. Tier 5 shows
// everything.
func clipParagraphs(text string, tier int) string {
	if tier >= 5 {
		return text
	}
	paras := strings.Split(strings.TrimSpace(text), "\n\n")
	if tier < 1 {
		tier = 1
	}
	if len(paras) <= tier {
		return text
	}
	return strings.Join(paras[:tier], "\n\n")
}
