package cmd

import (
	"github.com/spf13/cobra"

	"github.com/diffuselabs/diffused/internal/app"
	"github.com/diffuselabs/diffused/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "diffused",
	Short: "Interactive course on diffusion image models",
	Long:  "Diffused — a terminal course that teaches how diffusion image generators work, with spaced-repetition reviews to make it stick.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		return app.Run(app.Options{DBPath: dbPath})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DIFFUSED_DB env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then DIFFUSED_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
