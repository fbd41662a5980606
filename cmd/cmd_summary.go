// Copyright 2026 The Fracset Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/jmarzano/fracset/ingest"
	"github.com/jmarzano/fracset/orient"
)

var (
	summaryInput      string
	summaryResolution int
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Describe a dataset before clustering it",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if summaryInput == "" {
			return errors.New("no dataset given - use --input")
		}

		records, metrics, err := ingest.ReadFile(summaryInput)
		if err != nil {
			return err
		}

		samples := ingest.Orientations(records)

		fmt.Printf("Records: %d read, %d discarded, %d usable\n",
			metrics.Read, metrics.Discarded, len(samples))

		if len(samples) == 0 {
			return nil
		}

		dips := make([]float64, len(samples))
		poles := make([]orient.Vector, len(samples))

		for i, s := range samples {
			dips[i] = s.Dip
			poles[i] = s.Pole()
		}

		mean := orient.SphericalMean(poles)
		fmt.Printf("Mean orientation: %s\n", mean)
		fmt.Printf("Dip: mean %.1f°, stddev %.1f°\n", stat.Mean(dips, nil), stat.StdDev(dips, nil))
		fmt.Printf("Resultant length: %.3f  Fisher k: %.1f\n",
			orient.ResultantLength(poles), orient.FisherK(poles))

		regions, err := ingest.Regions(records, summaryResolution)
		if err != nil {
			return err
		}

		if len(regions) == 0 {
			return nil
		}

		a, b := strings.Repeat("─", 16), strings.Repeat("─", 8)
		fmt.Printf("Stations by H3 cell (resolution %d):\n", summaryResolution)
		fmt.Printf("╭─%-16s─┬─%8s─╮\n", a, b)
		fmt.Printf("│ %-16s │ %8s │\n", "Cell", "Samples")
		fmt.Printf("├─%-16s─┼─%8s─┤\n", a, b)

		for _, r := range regions {
			fmt.Printf("│ %-16s │ %8d │\n", r.Cell, r.Samples)
		}

		fmt.Printf("╰─%-16s─┴─%8s─╯\n", a, b)

		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryInput, "input", "i", "", "CSV dataset to describe")
	summaryCmd.Flags().IntVar(&summaryResolution, "h3-resolution", ingest.DefaultH3Resolution, "H3 resolution for the station breakdown")

	rootCmd.AddCommand(summaryCmd)
}
