package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ragu-lang/ragu/frontend/declare"
	"github.com/ragu-lang/ragu/frontend/reports"
	"github.com/ragu-lang/ragu/internal/log"
	"github.com/spf13/cobra"
)

var CheckCmd = &cobra.Command{
	Use:          "check file.yaml",
	Short:        "Load a type declaration manifest and answer its queries",
	RunE:         runCheck,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var (
	checkDumpEnv *bool
	checkNoWarn  *bool
	logLevel     *int
)

func init() {
	checkDumpEnv = CheckCmd.Flags().BoolP("dump", "d", false, "print the resulting type environment")
	checkNoWarn = CheckCmd.Flags().Bool("no-warn", false, "suppress warnings")
	logLevel = CheckCmd.Flags().IntP("log-level", "l", int(slog.LevelWarn), "log level")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	report := reports.NewErrorReport(*checkNoWarn)
	for _, path := range args {
		result, err := declare.LoadFile(path, report)
		if err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		if *checkDumpEnv {
			cmd.Print(result.Env)
		}
		for _, answer := range result.Answers {
			cmd.Println(answer)
		}
	}

	if report.NumIssues() > 0 {
		cmd.PrintErr(report)
	}
	report.ExitIfErrors()
	return nil
}
