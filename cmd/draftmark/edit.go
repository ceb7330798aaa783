package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newEditCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the editor (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEdit(cmd, f)
		},
	}
	cmd.Flags().BoolVar(&f.noAutosave, "no-autosave", false, "only save on ctrl+s")
	return cmd
}

func runEdit(cmd *cobra.Command, f *rootFlags) error {
	rt, err := openRuntime(cmd, f)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := commandContext(cmd)
	a := newApp(ctx, rt.cfg, rt.persister, rt.log)
	rt.log.Info("editor started", "key", rt.cfg.StorageKey, "autosave", rt.cfg.Autosave)

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	rt.log.Info("editor closed")
	return nil
}
