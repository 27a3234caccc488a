package cmd

import (
	"github.com/spf13/cobra"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Start a vocabulary drill",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
