package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/2beens/motivly/internal/catalog"

	"github.com/spf13/cobra"
)

var (
	flagKind     string
	flagDuration int
	flagMaxLevel int
	flagSeed     int64
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the built-in exercise catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List session templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := catalog.Kind(flagKind)
		if kind != "" && !kind.Valid() {
			return fmt.Errorf("unknown kind %q", flagKind)
		}

		var templates []catalog.Template
		for _, t := range catalog.Templates() {
			if kind != "" && t.Kind != kind {
				continue
			}
			if flagDuration > 0 && t.TargetDurationMinutes != flagDuration {
				continue
			}
			templates = append(templates, t)
		}
		return printTemplates(cmd.OutOrStdout(), templates)
	},
}

var catalogPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a random template for a session length",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDuration <= 0 {
			return errors.New("--duration must be a positive number of minutes")
		}
		kind := catalog.Kind(flagKind)
		if kind != "" && !kind.Valid() {
			return fmt.Errorf("unknown kind %q", flagKind)
		}

		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		picker := catalog.NewPicker(rand.New(rand.NewSource(seed)))
		t := picker.Pick(catalog.PickOptions{
			DurationMinutes: flagDuration,
			Kind:            kind,
			MaxLevel:        flagMaxLevel,
		})
		if t == nil {
			return fmt.Errorf("no template fits %d minutes", flagDuration)
		}
		return printTemplates(cmd.OutOrStdout(), []catalog.Template{*t})
	},
}

func init() {
	catalogListCmd.Flags().StringVar(&flagKind, "kind", "", "only templates of this kind")
	catalogListCmd.Flags().IntVar(&flagDuration, "duration", 0, "only templates of this length in minutes")

	catalogPickCmd.Flags().IntVar(&flagDuration, "duration", 0, "session length in minutes")
	catalogPickCmd.Flags().StringVar(&flagKind, "kind", "", "preferred kind")
	catalogPickCmd.Flags().IntVar(&flagMaxLevel, "max-level", 0, "highest level allowed (default 2)")
	catalogPickCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed, for reproducible picks")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogPickCmd)
}

func printTemplates(out io.Writer, templates []catalog.Template) error {
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(templates)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tKIND\tLEVEL\tMINUTES\tNAME")
	for _, t := range templates {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", t.Key, t.Kind, t.Level, t.TargetDurationMinutes, t.Name)
	}
	return tw.Flush()
}
