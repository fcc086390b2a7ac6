package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-crab/internal/atlas"
	"github.com/vovakirdan/flappy-crab/internal/core"
	"github.com/vovakirdan/flappy-crab/internal/games/crab"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// glyph is how a sprite looks in the terminal.
type glyph struct {
	Rune  rune
	Color core.Color
}

var spriteGlyphs = map[string]glyph{
	atlas.Crab0:      {'█', core.ColorOrange},
	atlas.Crab1:      {'█', core.ColorRed},
	atlas.PipeTop:    {'▓', core.ColorBrightGreen},
	atlas.PipeBottom: {'█', core.ColorGreen},
	atlas.FloorTile:  {'▒', core.ColorYellow},
}

// Rasterizer maps world coordinates onto a character grid.
type Rasterizer struct {
	WorldW, WorldH float32
}

// cells converts a world box into a half-open cell range. Any visible box
// covers at least one cell.
func (r Rasterizer) cells(s *core.Screen, b core.AABB) core.Rect {
	sx := float32(s.Width()) / r.WorldW
	sy := float32(s.Height()) / r.WorldH

	x0 := int(math.Floor(float64(b.X * sx)))
	y0 := int(math.Floor(float64(b.Y * sy)))
	x1 := core.Max(int(math.Ceil(float64(b.Right()*sx))), x0+1)
	y1 := core.Max(int(math.Ceil(float64(b.Bottom()*sy))), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Draw paints the commands in order; later commands cover earlier ones.
func (r Rasterizer) Draw(s *core.Screen, cmds []crab.DrawCommand) {
	for _, c := range cmds {
		g, ok := spriteGlyphs[c.Sprite.Name]
		if !ok {
			g = glyph{'?', core.ColorWhite}
		}
		rect := r.cells(s, c.Bounds())
		s.DrawRect(rect, g.Rune, g.Color)

		if c.Sprite.Name == atlas.Crab0 || c.Sprite.Name == atlas.Crab1 {
			r.drawEye(s, rect, c.Rotation)
		}
	}
}

// drawEye marks the crab's facing side. The eye rides high while the crab
// tilts up and low while it dives.
func (r Rasterizer) drawEye(s *core.Screen, rect core.Rect, rotation float32) {
	y := rect.Y + rect.H/2
	switch {
	case rotation < -0.2:
		y = rect.Y
	case rotation > 0.2:
		y = rect.Bottom() - 1
	}
	s.SetColored(rect.Right()-1, y, 'o', core.ColorBrightWhite)
}

// DrawHUD writes the score line and any phase banner.
func DrawHUD(s *core.Screen, st core.GameState) {
	s.DrawTextColored(1, 0, fmt.Sprintf("Best Score: %d   Current Score: %d", st.BestScore, st.Score), core.ColorBrightWhite)

	mid := s.Height() / 2
	switch {
	case st.Paused:
		drawBanner(s, mid, "PAUSED", core.ColorBrightYellow)
	case st.Phase == core.PhaseStartScreen:
		drawBanner(s, mid-2, "FLAPPY CRAB", core.ColorOrange)
		s.DrawTextCentered(mid+1, "press space to flap")
	case st.Phase == core.PhaseDead:
		drawBanner(s, mid, "OUCH!", core.ColorRed)
	}
}

// drawBanner writes centered text underlined by a rule of the same width.
func drawBanner(s *core.Screen, y int, text string, c core.Color) {
	n := len([]rune(text))
	x := core.Clamp((s.Width()-n)/2, 0, core.Max(s.Width()-n, 0))
	s.DrawTextColored(x, y, text, c)
	s.DrawHLine(x, y+1, core.Min(n, s.Width()), '─', c)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
