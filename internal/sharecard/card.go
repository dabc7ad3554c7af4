// Package sharecard renders a PNG progress card for sharing outside the
// terminal.
package sharecard

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const (
	cardWidth  = 800
	cardHeight = 418

	// Text is drawn at a 2x scale because the bitmap face is small.
	textScale = 2
)

var (
	bgColor     = color.NRGBA{R: 0x16, G: 0x16, B: 0x21, A: 0xFF}
	panelColor  = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x2E, A: 0xFF}
	accentColor = color.NRGBA{R: 0xB4, G: 0x8E, B: 0xF6, A: 0xFF}
	trackColor  = color.NRGBA{R: 0x31, G: 0x32, B: 0x44, A: 0xFF}
	textColor   = color.NRGBA{R: 0xCD, G: 0xD6, B: 0xF4, A: 0xFF}
	dimColor    = color.NRGBA{R: 0x8A, G: 0x8F, B: 0xA6, A: 0xFF}
)

// Card holds the numbers shown on a progress card.
type Card struct {
	PercentComplete int
	FullCount       int
	PartialCount    int
	MasteredCount   int
	ReviewsDue      int
	CourseComplete  bool
}

// Render draws the card and returns it as PNG bytes.
func (c Card) Render() ([]byte, error) {
	dc := gg.NewContext(cardWidth, cardHeight)

	dc.SetColor(bgColor)
	dc.Clear()

	// Inner panel.
	dc.SetColor(panelColor)
	dc.DrawRoundedRectangle(24, 24, cardWidth-48, cardHeight-48, 16)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.ScaleAbout(textScale, textScale, 0, 0)

	// All coordinates below are in scaled units.
	dc.SetColor(accentColor)
	dc.DrawString("diffused", 32, 48)
	dc.SetColor(dimColor)
	dc.DrawString("learn how diffusion models paint with noise", 32, 62)

	headline := fmt.Sprintf("%d%% of the course complete", c.PercentComplete)
	if c.CourseComplete {
		headline = "course complete!"
	}
	dc.SetColor(textColor)
	dc.DrawString(headline, 32, 92)

	drawProgressBar(dc, 32, 102, 336, 7, c.PercentComplete)

	lines := []string{
		fmt.Sprintf("%d challenges fully understood", c.FullCount),
		fmt.Sprintf("%d partially understood", c.PartialCount),
		fmt.Sprintf("%d mastered through review", c.MasteredCount),
		fmt.Sprintf("%d reviews waiting", c.ReviewsDue),
	}
	y := 132.0
	for _, line := range lines {
		dc.SetColor(textColor)
		dc.DrawString(line, 32, y)
		y += 16
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the card and writes it to path.
func (c Card) WriteFile(path string) error {
	png, err := c.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("write share card: %w", err)
	}
	return nil
}

func drawProgressBar(dc *gg.Context, x, y, w, h float64, percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	dc.SetColor(trackColor)
	dc.DrawRoundedRectangle(x, y, w, h, h/2)
	dc.Fill()

	filled := w * float64(percent) / 100
	if filled > 0 {
		dc.SetColor(accentColor)
		dc.DrawRoundedRectangle(x, y, filled, h, h/2)
		dc.Fill()
	}
}
