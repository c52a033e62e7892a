package view

import (
	"strings"
	"testing"

	"github.com/danielguerrarmz/deckfolio/internal/board"
	"github.com/danielguerrarmz/deckfolio/internal/display"
	"github.com/danielguerrarmz/deckfolio/internal/nav"
	"github.com/danielguerrarmz/deckfolio/internal/project"
	"github.com/danielguerrarmz/deckfolio/internal/tui/styles"
)

func testStyles() styles.Styles {
	return styles.New(styles.DefaultTheme())
}

func TestRenderKnobShowsPointerAndCaption(t *testing.T) {
	out := RenderKnob(testStyles(), "ARCH", 62, false)

	if !strings.Contains(out, "●") {
		t.Error("knob face should contain a pointer")
	}
	if !strings.Contains(out, "ARCH 62") {
		t.Errorf("knob caption missing, got:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != KnobHeight-1 {
		t.Errorf("knob spans %d lines, want %d", got+1, KnobHeight)
	}
}

func TestRenderKnobPointerMoves(t *testing.T) {
	// Value 0 points north (first face row); value 50 points south
	// (last face row).
	north := strings.Split(RenderKnob(testStyles(), "ARCH", 0, false), "\n")
	south := strings.Split(RenderKnob(testStyles(), "ARCH", 50, false), "\n")

	if !strings.Contains(north[0], "●") {
		t.Errorf("value 0 should point north, got:\n%s", strings.Join(north, "\n"))
	}
	if !strings.Contains(south[2], "●") {
		t.Errorf("value 50 should point south, got:\n%s", strings.Join(south, "\n"))
	}
}

func TestRenderSliderThumbPosition(t *testing.T) {
	top := strings.Split(RenderSlider(testStyles(), "DEPTH", 100, false, true), "\n")
	bottom := strings.Split(RenderSlider(testStyles(), "DEPTH", 0, false, true), "\n")

	if !strings.Contains(top[0], "██▌") {
		t.Errorf("value 100 should place the thumb on the top row, got:\n%s", strings.Join(top, "\n"))
	}
	if !strings.Contains(bottom[SliderTrackHeight-1], "██▌") {
		t.Errorf("value 0 should place the thumb on the bottom row, got:\n%s", strings.Join(bottom, "\n"))
	}
}

func TestRenderSliderCaption(t *testing.T) {
	out := RenderSlider(testStyles(), "TIME", 75, false, true)
	if !strings.Contains(out, "TIME 75") {
		t.Errorf("slider caption missing, got:\n%s", out)
	}
}

func TestRenderToggle(t *testing.T) {
	off := RenderToggle(testStyles(), "VIEW", "HERO", "BRKDWN", false, false)
	on := RenderToggle(testStyles(), "VIEW", "HERO", "BRKDWN", true, false)

	if !strings.Contains(off, "HERO") || strings.Contains(off, "BRKDWN") {
		t.Errorf("off toggle should show only the off label, got:\n%s", off)
	}
	if !strings.Contains(on, "BRKDWN") {
		t.Errorf("on toggle should show the on label, got:\n%s", on)
	}
}

func TestRenderLCDPadsToWidth(t *testing.T) {
	out := RenderLCD(testStyles(), display.Lines{Top: "ARCH", Bottom: "62"})
	if !strings.Contains(out, "ARCH") || !strings.Contains(out, "62") {
		t.Errorf("LCD should show both lines, got:\n%s", out)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("AB", 4); got != "AB  " {
		t.Errorf("padRight(AB, 4) = %q", got)
	}
	if got := padRight("ABCDEF", 4); got != "ABCD" {
		t.Errorf("padRight truncation = %q", got)
	}
}

func TestRenderDialActiveUnderNeedle(t *testing.T) {
	titles := []string{"About", "Casa", "Tono", "Plano"}
	activeIdx := 2
	rotation := nav.DialRotation(len(titles), activeIdx)

	out := RenderDial(testStyles(), titles, activeIdx, rotation, 40)
	lines := strings.Split(out, "\n")
	if len(lines) != DialHeight {
		t.Fatalf("dial spans %d lines, want %d", len(lines), DialHeight)
	}

	code := project.ShortCode(activeIdx)
	strip := []rune(lines[1])
	center := 40 / 2
	window := string(strip[center-3 : center+3])
	if !strings.Contains(window, code) {
		t.Errorf("active code %q should sit near the needle, strip: %q", code, string(strip))
	}
	if !strings.Contains(lines[2], "Tono") {
		t.Errorf("dial should caption the active title, got %q", lines[2])
	}
}

func TestRenderDialNeedleOnActiveCodeAtRest(t *testing.T) {
	titles := []string{"About", "Casa", "Tono", "Plano"}
	activeIdx := 2
	rotation := nav.DialRotation(len(titles), activeIdx)

	// An even width is the awkward case: the arc's zero column is
	// (width-1)/2, not width/2.
	out := RenderDial(testStyles(), titles, activeIdx, rotation, 40)
	lines := strings.Split(out, "\n")

	needleCol := -1
	for i, r := range []rune(lines[0]) {
		if r == '▼' {
			needleCol = i
			break
		}
	}
	if needleCol == -1 {
		t.Fatalf("no needle in %q", lines[0])
	}

	strip := []rune(lines[1])
	if r := strip[needleCol]; r == '·' {
		t.Errorf("needle at column %d points at filler, strip: %q", needleCol, string(strip))
	}
}

func TestRenderDialSingleProject(t *testing.T) {
	out := RenderDial(testStyles(), []string{"Solo"}, 0, 0, 30)
	if !strings.Contains(out, "Solo") {
		t.Errorf("single-project dial should still render, got:\n%s", out)
	}
}

func TestRenderDialDegenerateWidth(t *testing.T) {
	if out := RenderDial(testStyles(), []string{"A", "B"}, 0, 0, 4); out != "" {
		t.Errorf("narrow dial should render nothing, got %q", out)
	}
}

func TestContentVisibilityGates(t *testing.T) {
	proj := project.Project{
		ID:           "casa",
		Title:        "Casa Mezquite",
		Overview:     "A courtyard house.",
		Architecture: "Rammed earth walls.",
		HasTimeline:  true,
		Meta:         &project.Meta{Date: "2024"},
	}

	c := NewContent(testStyles(), 60)

	state := board.DefaultState()
	state.ViewMode = board.ViewBreakdown
	state.ShowMetadata = true

	state.DetailDepth = 0
	shallow := c.Render(proj, state)
	if strings.Contains(shallow, "courtyard") {
		t.Error("depth 0 should hide the overview")
	}
	if strings.Contains(shallow, "Rammed") {
		t.Error("depth 0 should hide the columns")
	}

	state.DetailDepth = 20
	overview := c.Render(proj, state)
	if !strings.Contains(overview, "courtyard") {
		t.Error("depth 20 should show the overview")
	}
	if strings.Contains(overview, "Rammed") {
		t.Error("depth 20 should still hide the columns")
	}

	state.DetailDepth = 100
	full := c.Render(proj, state)
	for _, want := range []string{"courtyard", "Rammed", "CONCEPT", "2024"} {
		if !strings.Contains(full, want) {
			t.Errorf("depth 100 output missing %q", want)
		}
	}
}

func TestContentMetadataRequiresToggle(t *testing.T) {
	proj := project.Project{
		ID:    "casa",
		Title: "Casa Mezquite",
		Meta:  &project.Meta{Date: "2024"},
	}

	c := NewContent(testStyles(), 60)
	state := board.DefaultState() // ShowMetadata false, depth 100

	if out := c.Render(proj, state); strings.Contains(out, "2024") {
		t.Error("metadata should stay hidden while the toggle is off")
	}

	state.ShowMetadata = true
	if out := c.Render(proj, state); !strings.Contains(out, "2024") {
		t.Error("metadata should appear once the toggle is on")
	}
}

func TestContentShowsDetailTier(t *testing.T) {
	proj := project.Project{ID: "casa", Title: "Casa Mezquite"}
	c := NewContent(testStyles(), 60)
	state := board.DefaultState()

	for _, tc := range []struct {
		depth float64
		want  string
	}{
		{0, "DETAIL T1"},
		{50, "DETAIL T3"},
		{100, "DETAIL T5"},
	} {
		state.DetailDepth = tc.depth
		if out := c.Render(proj, state); !strings.Contains(out, tc.want) {
			t.Errorf("depth %v readout missing %q, got:\n%s", tc.depth, tc.want, out)
		}
	}
}

func TestContentHeroHidesColumns(t *testing.T) {
	proj := project.Project{
		ID:           "casa",
		Title:        "Casa Mezquite",
		Architecture: "Rammed earth walls.",
	}

	c := NewContent(testStyles(), 60)
	state := board.DefaultState() // hero mode

	if out := c.Render(proj, state); strings.Contains(out, "Rammed") {
		t.Error("hero mode should not render discipline columns")
	}
}

func TestClipParagraphs(t *testing.T) {
	text := "one\n\ntwo\n\nthree\n\nfour\n\nfive\n\nsix"

	if got := clipParagraphs(text, 5); got != text {
		t.Errorf("tier 5 should keep everything, got %q", got)
	}
	if got := clipParagraphs(text, 2); got != "one\n\ntwo" {
		t.Errorf("tier 2 = %q, want first two paragraphs", got)
	}
	if got := clipParagraphs(text, 0); got != "one" {
		t.Errorf("tier floor should keep one paragraph, got %q", got)
	}
}

func TestPadCenter(t *testing.T) {
	if got := padCenter("AB", 6); got != "  AB  " {
		t.Errorf("padCenter(AB, 6) = %q", got)
	}
	if got := padCenter("ABCDEFGH", 4); got != "ABCD" {
		t.Errorf("padCenter truncation = %q", got)
	}
}
