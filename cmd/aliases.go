package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/salvadorprieto/myshell/core/alias"
	"github.com/salvadorprieto/myshell/core/config"
)

var headerColor = color.New(color.FgGreen, color.Bold).SprintFunc()

// aliasesCmd renders a saved alias file without starting the interpreter.
var aliasesCmd = &cobra.Command{
	Use:   "aliases FILE",
	Short: "Show the aliases saved in FILE.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		limit := config.DefaultMaxAliases
		if configuration, err := config.Load(cfgPath); err == nil {
			limit = configuration.MaxAliases
		}

		table := alias.NewTable(limit)
		if err := table.Load(afero.NewOsFs(), args[0]); err != nil {
			return err
		}

		entries := table.All()
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No aliases found.")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), headerColor(fmt.Sprintf("Aliases in %s:", args[0])))

		tw := tablewriter.NewWriter(cmd.OutOrStdout())
		tw.SetHeader([]string{"Alias", "Command"})
		tw.SetBorder(true)
		tw.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
		for _, a := range entries {
			tw.Append([]string{a.New, a.Old})
		}
		tw.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aliasesCmd)
}
