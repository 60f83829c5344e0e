package cmd

import (
	"fmt"
	"os"

	"markbookctl/pkg/config"
	"markbookctl/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfg *config.AppConfig
	env *config.Env
	log zerolog.Logger

	snapshotFrom string
)

var rootCmd = &cobra.Command{
	Use:   "markbookctl",
	Short: "A CLI and TUI for Maplewood markbooks",
	Long: `markbookctl reads your course marks from the Maplewood connectEd portal,
shows each markbook as a unit/section/assignment tree, highlights what changed today
and computes your GPA.

Set MARKBOOK_SESSION to the ASP.NET_SessionId cookie of a logged-in portal session.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		env, err = config.LoadEnv()
		if err != nil {
			return err
		}

		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = env.LogLevel
		}
		log = logger.New(level)

		cfg, err = config.Load()
		if err != nil {
			return err
		}
		cfg.Apply(env)
		return cfg.Validate()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&snapshotFrom, "from", "", "Replay a saved snapshot instead of scraping the portal")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); defaults to MARKBOOK_LOG_LEVEL")
}
