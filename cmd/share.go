package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diffuselabs/diffused/internal/app"
	"github.com/diffuselabs/diffused/internal/sharecard"
)

var shareCmd = &cobra.Command{
	Use:   "share [file]",
	Short: "Render a PNG progress card to share",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := "diffused-progress.png"
		if len(args) == 1 {
			out = args[0]
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		tracker, st, _, _, err := app.Bootstrap(app.Options{DBPath: dbPath})
		if err != nil {
			return err
		}
		defer st.Close()

		score := tracker.Score()
		rs := tracker.Scheduler().ReviewStats(time.Now())

		card := sharecard.Card{
			PercentComplete: tracker.PercentComplete(),
			FullCount:       score.Full,
			PartialCount:    score.Partial,
			MasteredCount:   rs.Mastered,
			ReviewsDue:      rs.Due,
			CourseComplete:  tracker.IsCourseComplete(),
		}
		if err := card.WriteFile(out); err != nil {
			return fmt.Errorf("writing card: %w", err)
		}
		fmt.Println("Wrote", out)
		return nil
	},
}
