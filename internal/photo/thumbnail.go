package photo

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

// RenderThumbnail draws img as cols x rows terminal cells. Each cell packs two
// vertically stacked pixels using half-block glyphs, and pixels outside the
// inscribed circle are left blank so the avatar renders round.
func RenderThumbnail(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	h := rows * 2
	dst := image.NewRGBA(image.Rect(0, 0, cols, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	cx, cy := float64(cols)/2, float64(h)/2
	radius := cx
	if cy < radius {
		radius = cy
	}
	inside := func(x, y int) bool {
		dx := float64(x) + 0.5 - cx
		dy := float64(y) + 0.5 - cy
		if dx*dx+dy*dy > radius*radius {
			return false
		}
		return dst.RGBAAt(x, y).A > 0
	}

	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		top, bottom := r*2, r*2+1
		for x := 0; x < cols; x++ {
			inTop, inBottom := inside(x, top), inside(x, bottom)
			switch {
			case inTop && inBottom:
				b.WriteString(lipgloss.NewStyle().
					Foreground(hexColor(dst.RGBAAt(x, top))).
					Background(hexColor(dst.RGBAAt(x, bottom))).
					Render(upperHalf))
			case inTop:
				b.WriteString(lipgloss.NewStyle().Foreground(hexColor(dst.RGBAAt(x, top))).Render(upperHalf))
			case inBottom:
				b.WriteString(lipgloss.NewStyle().Foreground(hexColor(dst.RGBAAt(x, bottom))).Render(lowerHalf))
			default:
				b.WriteByte(' ')
			}
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
