// ABOUTME: CLI commands for routine templates: list and apply.
// ABOUTME: Apply expands a template into a new split via the instantiation engine.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/splitfitapp/splitfit/internal/routine"
)

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"tpl"},
	Short:   "Use built-in routine templates",
	Long: `Create splits from built-in routine templates.

A template is a blueprint of named routines (Push, Pull, Legs, ...).
Applying one assigns routines to weekdays; assignments that name no
routine in the template become rest days with that name.

EXAMPLES:

  splitfit template list
  splitfit template apply "Push/Pull/Legs" "My PPL" 1=Push 3=Pull 5=Legs 7=Rest

CAUTION:

  Applying the same template twice creates two separate splits; there
  is no deduplication. A failure part-way leaves the rows already
  written in place.`,
}

var templateListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := routine.DefaultCatalog()
		for _, name := range catalog.Names() {
			tmpl, _ := catalog.Find(name)
			var routines []string
			for _, d := range tmpl.Days {
				if !d.Rest {
					routines = append(routines, d.Name)
				}
			}
			fmt.Printf("%s  %s\n", color.New(color.Bold).Sprint(name),
				color.New(color.Faint).Sprint(strings.Join(routines, ", ")))
		}
		return nil
	},
}

var templateApplyCmd = &cobra.Command{
	Use:   "apply <template> <split-name> <day=routine>...",
	Short: "Create a split from a template",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		assignments := make(map[int]string)
		for _, arg := range args[2:] {
			day, name, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("invalid assignment %q, want day=routine", arg)
			}
			dow, err := strconv.Atoi(day)
			if err != nil {
				return fmt.Errorf("invalid day of week in %q", arg)
			}
			assignments[dow] = name
		}

		engine := routine.NewEngine(routine.DefaultCatalog(), rp, identity)
		full, err := engine.Instantiate(args[0], args[1], assignments)
		if err != nil {
			return fmt.Errorf("failed to apply template: %w", err)
		}

		color.Green("✓ Created split %q from %s", full.Split.Name, args[0])
		faint := color.New(color.Faint)
		fmt.Printf("  %s\n", faint.Sprint(shortID(full.Split.ID)))
		for _, day := range full.Days {
			fmt.Printf("  %s  %s  %d exercises\n",
				faint.Sprint(shortID(day.Day.ID)), dayLabel(day.Day), len(day.Exercises))
		}
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateApplyCmd)
	rootCmd.AddCommand(templateCmd)
}
