package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wanmail/driverfactory"
)

func newCmdKinds() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the browser kinds accepted by --kind",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range driverfactory.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
}

func newCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "driverfactory version %s\n", version)
		},
	}
}
