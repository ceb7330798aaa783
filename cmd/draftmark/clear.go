package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := openRuntime(cmd, f)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := rt.persister.Clear(commandContext(cmd)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %q\n", rt.cfg.StorageKey)
			return nil
		},
	}
}
