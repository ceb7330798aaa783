package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/draftmark/document"
)

func newExportCmd(f *rootFlags) *cobra.Command {
	var (
		pretty bool
		plain  bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the stored document",
		Long: `Print the stored document in its raw JSON form.

--text prints the plain text instead, one paragraph per line.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := openRuntime(cmd, f)
			if err != nil {
				return err
			}
			defer rt.Close()

			raw, ok, err := rt.persister.Export(commandContext(cmd))
			if err != nil {
				return err
			}
			if !ok {
				cmd.PrintErrln("no stored document")
				return nil
			}

			switch {
			case plain:
				c, err := document.UnmarshalRaw([]byte(raw))
				if err != nil {
					return fmt.Errorf("decoding stored document: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.PlainText())
			case pretty:
				var buf bytes.Buffer
				if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
					return fmt.Errorf("formatting stored document: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), buf.String())
			default:
				fmt.Fprintln(cmd.OutOrStdout(), raw)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().BoolVar(&plain, "text", false, "print plain text")
	return cmd
}
