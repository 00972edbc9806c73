package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-BookingDocs/internal/config"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/spreadsheet"
)

func newTemplateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage the confirmation template",
	}

	cmd.AddCommand(newTemplateInitCommand(), newTemplateCheckCommand())
	return cmd
}

func newTemplateInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default confirmation template",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			path := cfg.Storage.TemplatePath

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("template already exists at %s (use --force to overwrite)", path)
				}
			}

			if err := spreadsheet.CreateDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Template created at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing template")
	return cmd
}

func newTemplateCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Open the template and print its key cells",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			info, err := spreadsheet.Inspect(cfg.Storage.TemplatePath)
			if errors.Is(err, spreadsheet.ErrTemplateNotFound) {
				return fmt.Errorf("template file not found at: %s", cfg.Storage.TemplatePath)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Template: %s\n", cfg.Storage.TemplatePath)
			fmt.Fprintf(out, "Sheet:    %s\n", info.SheetName)

			cells := make([]string, 0, len(info.KeyCells))
			for cell := range info.KeyCells {
				cells = append(cells, cell)
			}
			sort.Strings(cells)
			for _, cell := range cells {
				fmt.Fprintf(out, "  %-4s %s\n", cell, info.KeyCells[cell])
			}
			return nil
		},
	}
}
