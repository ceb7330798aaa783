package main

import (
	"github.com/spf13/cobra"

	"github.com/iw2rmb/draftmark"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("draftmark version %s\n", draftmark.Describe())
		},
	}
}
