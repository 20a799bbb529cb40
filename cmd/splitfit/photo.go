// ABOUTME: CLI commands for progress photos.
// ABOUTME: Stores an image reference plus optional weight and notes per date.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/splitfitapp/splitfit/internal/models"
)

var (
	photoWeight float64
	photoNotes  string
)

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Manage progress photos",
	Long: `Track progress photos by date.

Only the image reference (a path or URL) is stored, not the image
itself.

Examples:
  splitfit photo add ~/pics/2026-09-01.jpg --weight 82.5
  splitfit photo list
  splitfit photo rm abc12345`,
}

var photoAddCmd = &cobra.Command{
	Use:   "add <image-ref>",
	Short: "Add a progress photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		p := models.NewProgressPhoto(acct.UserID, args[0])
		if photoWeight > 0 {
			p.WithWeight(photoWeight)
		}
		if photoNotes != "" {
			p.WithNotes(photoNotes)
		}

		if err := rp.CreatePhoto(p); err != nil {
			return fmt.Errorf("failed to add photo: %w", err)
		}

		color.Green("✓ Added photo for %s", p.Date.Format("2006-01-02"))
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(p.ID)))
		return nil
	},
}

var photoListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List progress photos",
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		photos, err := rp.ListPhotos(acct.UserID)
		if err != nil {
			return fmt.Errorf("failed to list photos: %w", err)
		}
		if len(photos) == 0 {
			fmt.Println("No photos found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range photos {
			weight := ""
			if p.Weight != nil {
				weight = fmt.Sprintf("  %.1f kg", *p.Weight)
			}
			notes := ""
			if p.Notes != nil && *p.Notes != "" {
				notes = faint.Sprintf("  (%s)", truncate(*p.Notes, 30))
			}
			fmt.Printf("%s  %s  %s%s%s\n",
				faint.Sprint(shortID(p.ID)),
				p.Date.Format("2006-01-02"),
				p.ImageRef, weight, notes)
		}
		return nil
	},
}

var photoDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a progress photo",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := requireUser()
		if err != nil {
			return err
		}

		id, err := resolvePhotoID(acct.UserID, args[0])
		if err != nil {
			return err
		}
		if err := rp.DeletePhoto(id); err != nil {
			return fmt.Errorf("failed to delete photo: %w", err)
		}
		color.Yellow("✗ Deleted photo %s", args[0])
		return nil
	},
}

func init() {
	photoAddCmd.Flags().Float64Var(&photoWeight, "weight", 0, "body weight in kg")
	photoAddCmd.Flags().StringVar(&photoNotes, "notes", "", "notes for the photo")
	photoCmd.AddCommand(photoAddCmd)
	photoCmd.AddCommand(photoListCmd)
	photoCmd.AddCommand(photoDeleteCmd)
	rootCmd.AddCommand(photoCmd)
}
