package photo

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRenderThumbnail_Dimensions(t *testing.T) {
	out := RenderThumbnail(solid(40, 40, color.RGBA{G: 180, A: 255}), 12, 6)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 6)
	for i, line := range lines {
		assert.Equal(t, 12, lipgloss.Width(line), "line %d width", i)
	}
}

func TestRenderThumbnail_RoundMask(t *testing.T) {
	out := RenderThumbnail(solid(40, 40, color.White), 12, 6)
	lines := strings.Split(out, "\n")

	// Corners fall outside the circle.
	assert.True(t, strings.HasPrefix(lines[0], " "), "top-left corner should be blank")
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], " "), "bottom-right corner should be blank")
	// The centre row is filled.
	assert.Contains(t, lines[3], upperHalf)
}

func TestRenderThumbnail_Deterministic(t *testing.T) {
	img := solid(30, 20, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	assert.Equal(t, RenderThumbnail(img, 10, 5), RenderThumbnail(img, 10, 5))
}

func TestRenderThumbnail_TransparentIsBlank(t *testing.T) {
	out := RenderThumbnail(solid(20, 20, color.Transparent), 8, 4)
	assert.Empty(t, strings.TrimSpace(strings.ReplaceAll(out, "\n", "")))
}

func TestRenderThumbnail_Degenerate(t *testing.T) {
	assert.Empty(t, RenderThumbnail(nil, 10, 5))
	assert.Empty(t, RenderThumbnail(solid(2, 2, color.White), 0, 5))
	assert.Empty(t, RenderThumbnail(solid(2, 2, color.White), 5, 0))
}
