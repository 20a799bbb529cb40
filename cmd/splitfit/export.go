// ABOUTME: CLI commands for exporting and importing training data.
// ABOUTME: Full JSON snapshot of splits, sessions, sets, and photos.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/splitfitapp/splitfit/internal/repo"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	Long: `Export every split, session, set, and photo you own as a single
JSON document, suitable for backup or import on another machine.

Examples:
  splitfit export                   # to stdout
  splitfit export -o backup.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		data, err := rp.GetAllData(acct.UserID)
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(out))
			return nil
		}
		if err := os.WriteFile(exportOutput, out, 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON export",
	Long: `Import a splitfit JSON export. Entities keep their original ids,
so importing the same file twice overwrites in place rather than
duplicating.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var data repo.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("failed to parse export: %w", err)
		}

		if err := rp.ImportData(&data); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		color.Green("✓ Imported %d splits, %d sessions, %d sets, %d photos",
			len(data.Splits), len(data.Sessions), len(data.Sets), len(data.Photos))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
