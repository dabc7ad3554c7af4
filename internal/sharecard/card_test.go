package sharecard

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderProducesPNG(t *testing.T) {
	card := Card{
		PercentComplete: 61,
		FullCount:       8,
		PartialCount:    3,
		MasteredCount:   2,
		ReviewsDue:      1,
	}

	data, err := card.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode rendered PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != cardWidth || bounds.Dy() != cardHeight {
		t.Errorf("card size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), cardWidth, cardHeight)
	}
}

func TestRenderClampsPercent(t *testing.T) {
	for _, pct := range []int{-5, 0, 100, 140} {
		card := Card{PercentComplete: pct}
		if _, err := card.Render(); err != nil {
			t.Errorf("Render(percent=%d): %v", pct, err)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	card := Card{PercentComplete: 100, CourseComplete: true}

	if err := card.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("written file is not a valid PNG: %v", err)
	}
}
