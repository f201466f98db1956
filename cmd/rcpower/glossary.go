package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rcpower/internal/chart"
	"rcpower/internal/glossary"
)

var glossaryWidth int

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Explain the power-system terms used by the tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		width := glossaryWidth
		if !cmd.Flags().Changed("width") {
			width = chart.TerminalWidth(glossaryWidth)
		}
		fmt.Fprint(cmd.OutOrStdout(), glossary.Render(width-2))
		return nil
	},
}

func init() {
	glossaryCmd.Flags().IntVar(&glossaryWidth, "width", 80, "Wrap width (defaults to the terminal width)")
}
