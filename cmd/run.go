package cmd

import (
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/salvadorprieto/myshell/core"
	"github.com/salvadorprieto/myshell/core/logger"
)

// runCmd starts the read-execute loop on the terminal.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive interpreter.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		events := logger.Nop()
		if configuration.LogShellEvents {
			fd, err := configuration.OpenAppLog()
			if err != nil {
				return err
			}
			defer fd.Close()
			events = logger.NewJSONLinesRecorder(fd)
		}

		osFs := afero.NewOsFs()
		sh := core.NewShell(configuration, osFs, os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr(), events.NewSession())

		if configuration.AliasFile != "" {
			if err := sh.Aliases.Load(osFs, configuration.AliasFile); err != nil {
				log.Printf("alias autoload: %v", err)
			}
		}

		if code := sh.Run(); code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
