package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/scalarguard"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of scalarguard",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "scalarguard version %s\n", strings.TrimSpace(scalarguard.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
