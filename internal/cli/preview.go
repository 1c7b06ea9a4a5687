package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/thangdevalone/meeting-layout-grid/pkg/frame"
	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/float"
)

// Terminal cells are roughly twice as tall as wide, so a 16:9 video tile
// reads as 32:9 in character units.
const previewRatio = "32:9"

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactive terminal preview of a layout",
		Long: `Preview renders the computed grid in the terminal and lets you adjust it
interactively: add and remove participants, pin tiles, toggle spotlight,
and page through overflowed tiles.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newPreviewModel(count)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 6, "initial number of participant tiles")

	return cmd
}

// previewModel is the bubbletea model for the interactive preview.
type previewModel struct {
	opts   layout.Options
	frame  frame.Frame
	err    error
	width  int
	height int
}

func newPreviewModel(count int) previewModel {
	opts := layout.DefaultOptions()
	opts.Count = count
	opts.AspectRatio = previewRatio
	opts.Gap = 1
	// Pixel-sized float defaults would swallow a terminal canvas.
	opts.FloatBreakpoints = []float.Breakpoint{
		{MinWidth: 0, Width: 16, Height: 5},
		{MinWidth: 120, Width: 26, Height: 8},
	}
	return previewModel{opts: opts}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			m.opts.Count++
		case "-", "_":
			if m.opts.Count > 0 {
				m.opts.Count--
			}
			m.clampPin()
		case "p":
			m.cyclePin()
		case "s":
			if m.opts.Mode == layout.ModeSpotlight {
				m.opts.Mode = layout.ModeGallery
			} else {
				m.opts.Mode = layout.ModeSpotlight
			}
		case "v":
			if m.opts.MaxVisible > 0 {
				m.opts.MaxVisible = 0
				m.opts.CurrentVisiblePage = 0
			} else {
				m.opts.MaxVisible = 6
			}
		case "left", "h":
			if m.opts.CurrentVisiblePage > 0 {
				m.opts.CurrentVisiblePage--
			}
		case "right", "l":
			if m.opts.MaxVisible > 0 {
				m.opts.CurrentVisiblePage++
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	m.recompute()
	return m, nil
}

// cyclePin advances the pinned index: none, 0, 1, ..., count-1, none.
func (m *previewModel) cyclePin() {
	switch {
	case m.opts.Count == 0:
		m.opts.PinnedIndex = nil
	case m.opts.PinnedIndex == nil:
		zero := 0
		m.opts.PinnedIndex = &zero
	case *m.opts.PinnedIndex >= m.opts.Count-1:
		m.opts.PinnedIndex = nil
	default:
		next := *m.opts.PinnedIndex + 1
		m.opts.PinnedIndex = &next
	}
}

func (m *previewModel) clampPin() {
	if m.opts.PinnedIndex != nil && *m.opts.PinnedIndex >= m.opts.Count {
		m.opts.PinnedIndex = nil
	}
}

func (m *previewModel) recompute() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.opts.Dimensions = geometry.Dimensions{
		Width:  float64(m.width - 2),
		Height: float64(m.height - 4),
	}

	res, err := layout.Compute(m.opts)
	if err != nil {
		m.err = err
		return
	}
	f, err := res.Export()
	if err != nil {
		m.err = err
		return
	}
	m.frame = f
	m.err = nil
}

func (m previewModel) View() string {
	if m.width == 0 {
		return "measuring terminal..."
	}
	if m.err != nil {
		return StyleWarning.Render("layout error: " + m.err.Error())
	}

	var b strings.Builder
	b.WriteString(" " + StyleTitle.Render("meetgrid preview"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s · %d tiles", m.frame.Mode, m.frame.Count)))
	if m.opts.PinnedIndex != nil {
		b.WriteString(StyleDim.Render(fmt.Sprintf(" · pin %d", *m.opts.PinnedIndex+1)))
	}
	if m.frame.HiddenCount > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf(" · %d hidden", m.frame.HiddenCount)))
	}
	b.WriteString("\n")

	b.WriteString(m.renderCanvas())

	b.WriteString("\n ")
	b.WriteString(StyleDim.Render("+/- tiles  p pin  s spotlight  v overflow  ←/→ page  q quit"))
	return b.String()
}

// renderCanvas draws the visible tiles into a character grid.
func (m previewModel) renderCanvas() string {
	w, h := m.width, m.height-3
	if w < 4 || h < 3 {
		return ""
	}

	canvas := make([][]rune, h)
	for y := range canvas {
		canvas[y] = make([]rune, w)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	overflowIndex := -1
	if m.frame.HiddenCount > 0 {
		for _, t := range m.frame.Tiles {
			if t.Visible {
				overflowIndex = t.Index
			}
		}
	}

	for _, t := range m.frame.Tiles {
		if !t.Visible {
			continue
		}
		label := fmt.Sprintf("%d", t.Index+1)
		if t.Index == overflowIndex {
			label = fmt.Sprintf("+%d", m.frame.HiddenCount)
		}
		drawBox(canvas, int(t.Left)+1, int(t.Top), int(t.Width), int(t.Height), t.Main || t.Float, label)
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	return b.String()
}

// drawBox draws a bordered rectangle with a centered label, clipped to the
// canvas. Emphasized boxes use double borders.
func drawBox(canvas [][]rune, x, y, w, h int, emphasize bool, label string) {
	if w < 2 || h < 2 {
		return
	}

	tl, tr, bl, br := '┌', '┐', '└', '┘'
	hl, vl := '─', '│'
	if emphasize {
		tl, tr, bl, br = '╔', '╗', '╚', '╝'
		hl, vl = '═', '║'
	}

	set := func(px, py int, r rune) {
		if py >= 0 && py < len(canvas) && px >= 0 && px < len(canvas[py]) {
			canvas[py][px] = r
		}
	}

	for dx := 1; dx < w-1; dx++ {
		set(x+dx, y, hl)
		set(x+dx, y+h-1, hl)
	}
	for dy := 1; dy < h-1; dy++ {
		set(x, y+dy, vl)
		set(x+w-1, y+dy, vl)
	}
	set(x, y, tl)
	set(x+w-1, y, tr)
	set(x, y+h-1, bl)
	set(x+w-1, y+h-1, br)

	lx := x + (w-len(label))/2
	ly := y + h/2
	for i, r := range label {
		if lx+i > x && lx+i < x+w-1 {
			set(lx+i, ly, r)
		}
	}
}
