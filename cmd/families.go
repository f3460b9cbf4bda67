package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/tabqa/tabqa/internal/ingest"
	"github.com/tabqa/tabqa/internal/metrics"
	"github.com/tabqa/tabqa/internal/render"
)

// The three metric families are independently callable, one subcommand
// each, mirroring audit's combined view.

var completenessCmd = &cobra.Command{
	Use:   "completeness [file]",
	Short: "Report missing-value completeness per column and overall",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		applyConfig(cmd)
		runFamily(args[0], metrics.Completeness{})
	},
}

var consistencyCmd = &cobra.Command{
	Use:   "consistency [file]",
	Short: "Report type-coercion consistency per column and overall",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		applyConfig(cmd)
		runFamily(args[0], metrics.Consistency{})
	},
}

var accuracyCmd = &cobra.Command{
	Use:   "accuracy [file]",
	Short: "Report outlier-based accuracy per column and overall",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		applyConfig(cmd)
		runFamily(args[0], metrics.Accuracy{Threshold: zThresh})
	},
}

func init() {
	rootCmd.AddCommand(completenessCmd)
	rootCmd.AddCommand(consistencyCmd)
	rootCmd.AddCommand(accuracyCmd)

	accuracyCmd.Flags().Float64Var(&zThresh, "z-thresh", metrics.DefaultZThreshold,
		"Z-score threshold for outlier detection")

	for _, c := range []*cobra.Command{completenessCmd, consistencyCmd, accuracyCmd} {
		c.Flags().IntVar(&auditWorkers, "workers", 0,
			"Number of parallel workers (default: auto-detect CPU cores)")
		c.Flags().StringVar(&outputFile, "output", "",
			"Output file to save results (default: stdout)")
	}
}

func runFamily(path string, fam metrics.Family) {
	ds, err := ingest.Load(path, ingest.Options{})
	if err != nil {
		log.Fatalf("Failed to load %s: %v", path, err)
	}

	report := metrics.Evaluate(ds, []metrics.Family{fam}, auditWorkers)
	writeOutput(render.Table(&report.Families[0]))
}
