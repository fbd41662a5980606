// Copyright 2026 The Fracset Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jmarzano/fracset/cluster"
	"github.com/jmarzano/fracset/ingest"
	"github.com/jmarzano/fracset/orient"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Group a dataset into fracture sets",
}

var (
	inputPath  string
	palette    []string
	namePrefix string

	dbscanOptions = cluster.DBSCANOptions{}
	opticsOptions = cluster.OPTICSOptions{}
)

// loadSamples reads the dataset and reports how much of it survived
// validation.
func loadSamples() ([]orient.Orientation, error) {
	if inputPath == "" {
		return nil, errors.New("no dataset given - use --input")
	}

	records, metrics, err := ingest.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}

	if metrics.Discarded > 0 {
		log.Printf("Dataset loaded - %d records, %d discarded", metrics.Read, metrics.Discarded)
	}

	return ingest.Orientations(records), nil
}

func emit(res *cluster.Result) error {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	fmt.Println(string(out))

	return nil
}

var clusterDBSCANCmd = &cobra.Command{
	Use:   "dbscan",
	Short: "Density-based clustering (caller-supplied radius and density)",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		samples, err := loadSamples()
		if err != nil {
			return err
		}

		dbscanOptions.Palette = palette
		dbscanOptions.NamePrefix = namePrefix

		res, err := cluster.ByDensity(samples, dbscanOptions)
		if err != nil {
			return err
		}

		return emit(res)
	},
}

var clusterOPTICSCmd = &cobra.Command{
	Use:   "optics",
	Short: "Ordering-based clustering with a reachability-quantile cut",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		samples, err := loadSamples()
		if err != nil {
			return err
		}

		opticsOptions.Palette = palette
		opticsOptions.NamePrefix = namePrefix

		res, err := cluster.ByOrdering(samples, opticsOptions)
		if err != nil {
			return err
		}

		return emit(res)
	},
}

func init() {
	clusterCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "CSV dataset to cluster")
	clusterCmd.PersistentFlags().StringSliceVar(&palette, "palette", nil, "ordered color list cycled over cluster ranks")
	clusterCmd.PersistentFlags().StringVar(&namePrefix, "name-prefix", cluster.DefaultNamePrefix, "prefix for generated cluster names")

	clusterDBSCANCmd.Flags().Float64Var(&dbscanOptions.EpsDeg, "eps", cluster.DefaultDBSCANEpsDeg, "neighborhood radius in degrees")
	clusterDBSCANCmd.Flags().IntVar(&dbscanOptions.MinPts, "min-pts", cluster.DefaultDBSCANMinPts, "minimum neighborhood size for a core point")

	clusterOPTICSCmd.Flags().IntVar(&opticsOptions.MinPts, "min-pts", cluster.DefaultOPTICSMinPts, "neighborhood size for a core point")
	clusterOPTICSCmd.Flags().Float64Var(&opticsOptions.EpsMaxDeg, "eps-max", 0, "cap on the neighborhood search radius in degrees (0 = unbounded)")
	clusterOPTICSCmd.Flags().Float64Var(&opticsOptions.Quantile, "quantile", cluster.DefaultOPTICSQuantile, "reachability quantile that sets the extraction threshold")
	clusterOPTICSCmd.Flags().IntVar(&opticsOptions.MinClusterSize, "min-cluster-size", cluster.DefaultMinClusterSize, "shortest reachability segment kept as a cluster")

	clusterCmd.AddCommand(clusterDBSCANCmd)
	clusterCmd.AddCommand(clusterOPTICSCmd)
	rootCmd.AddCommand(clusterCmd)
}
