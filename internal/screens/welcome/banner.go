package welcome

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/diffuselabs/diffused/internal/ui/theme"
)

const banner = `██████╗ ██╗███████╗███████╗██╗   ██╗███████╗███████╗██████╗
██╔══██╗██║██╔════╝██╔════╝██║   ██║██╔════╝██╔════╝██╔══██╗
██║  ██║██║█████╗  █████╗  ██║   ██║███████╗█████╗  ██║  ██║
██║  ██║██║██╔══╝  ██╔══╝  ██║   ██║╚════██║██╔══╝  ██║  ██║
██████╔╝██║██║     ██║     ╚██████╔╝███████║███████╗██████╔╝
╚═════╝ ╚═╝╚═╝     ╚═╝      ╚═════╝ ╚══════╝╚══════╝╚═════╝ `

var noiseRunes = []rune("▓▒░@#%*+=~:.")

// renderDenoised renders the banner at a given denoising step. Step 0 is
// pure noise; the final step is the clean banner. Noise placement is
// keyed off a fixed seed so each step is stable between frames.
func renderDenoised(step, total int) string {
	lines := strings.Split(banner, "\n")
	if step >= total {
		return lipgloss.NewStyle().Foreground(theme.Primary).Render(banner)
	}

	// Fraction of cells still noisy shrinks as step advances.
	noisy := 1.0 - float64(step)/float64(total)

	rng := rand.New(rand.NewPCG(42, uint64(step)))
	noiseStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	cleanStyle := lipgloss.NewStyle().Foreground(theme.Primary)

	var out []string
	for _, line := range lines {
		var b strings.Builder
		for _, r := range line {
			if r != ' ' && rng.Float64() < noisy {
				b.WriteString(noiseStyle.Render(string(noiseRunes[rng.IntN(len(noiseRunes))])))
			} else {
				b.WriteString(cleanStyle.Render(string(r)))
			}
		}
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}

func stepLabel(step, total int) string {
	return fmt.Sprintf("denoising step %d / %d", step, total)
}
