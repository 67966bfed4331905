package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/scalarguard/pkg/scalar"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the recognized type tags",
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range scalar.Kinds() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", k, strings.Join(k.Aliases(), ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
