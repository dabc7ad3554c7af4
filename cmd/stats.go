package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diffuselabs/diffused/internal/app"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print course progress without opening the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		tracker, st, eventRepo, _, err := app.Bootstrap(app.Options{DBPath: dbPath})
		if err != nil {
			return err
		}
		defer st.Close()

		score := tracker.Score()
		rs := tracker.Scheduler().ReviewStats(time.Now())

		fmt.Printf("Course progress:  %d%%\n", tracker.PercentComplete())
		fmt.Printf("Understanding:    solid %d, shaky %d, missed %d\n", score.Full, score.Partial, score.None)
		fmt.Printf("Reviews:          %d due, %d mastered, %d learning\n", rs.Due, rs.Mastered, rs.Learning)

		if correct, total, err := eventRepo.ReviewAccuracy(context.Background()); err == nil && total > 0 {
			fmt.Printf("Review accuracy:  %d%% (%d/%d)\n", 100*correct/total, correct, total)
		}

		if next, ok := tracker.NextLesson(); ok {
			fmt.Printf("Next lesson:      %s  %s\n", next.ID, next.Title)
		} else {
			fmt.Println("Next lesson:      course complete!")
		}
		return nil
	},
}
