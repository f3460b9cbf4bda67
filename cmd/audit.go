package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tabqa/tabqa/internal/connectors"
	"github.com/tabqa/tabqa/internal/ingest"
	"github.com/tabqa/tabqa/internal/metrics"
	"github.com/tabqa/tabqa/internal/render"
)

var (
	zThresh        float64
	auditWorkers   int
	auditRecursive bool
	outputFile     string
	minSize        int64
	maxSize        int64
)

var auditCmd = &cobra.Command{
	Use:   "audit [file or directory]",
	Short: "Run all quality metric families over a file or directory",
	Long: `Audit CSV/TSV data for completeness, consistency, and accuracy.

Examples:
  tabqa audit data.csv                      # Single file
  tabqa audit /data/exports/ --recursive    # Every csv/tsv under a tree
  tabqa audit data.csv --z-thresh 2.5       # Stricter outlier cutoff
  tabqa audit data.csv --output report.txt  # Save the report`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		applyConfig(cmd)
		targetPath := args[0]

		fileInfo, err := os.Stat(targetPath)
		if err != nil {
			log.Fatalf("Error accessing %s: %v", targetPath, err)
		}

		var report string
		if fileInfo.IsDir() {
			report = auditDirectory(targetPath)
		} else {
			out, err := auditFile(targetPath)
			if err != nil {
				log.Fatalf("Failed to audit %s: %v", targetPath, err)
			}
			report = out
		}

		writeOutput(report)
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().Float64Var(&zThresh, "z-thresh", metrics.DefaultZThreshold,
		"Z-score threshold for outlier detection")
	auditCmd.Flags().IntVar(&auditWorkers, "workers", 0,
		"Number of parallel workers per file (default: auto-detect CPU cores)")
	auditCmd.Flags().BoolVarP(&auditRecursive, "recursive", "r", false,
		"Process directories recursively")
	auditCmd.Flags().StringVar(&outputFile, "output", "",
		"Output file to save results (default: stdout)")
	auditCmd.Flags().Int64Var(&minSize, "min-size", 0,
		"Minimum file size in bytes")
	auditCmd.Flags().Int64Var(&maxSize, "max-size", 0,
		"Maximum file size in bytes")
}

// applyConfig fills in flag values the user did not set from the loaded
// configuration.
func applyConfig(cmd *cobra.Command) {
	if cfg == nil {
		return
	}
	if !cmd.Flags().Changed("z-thresh") && cfg.ZThreshold > 0 {
		zThresh = cfg.ZThreshold
	}
	if !cmd.Flags().Changed("workers") {
		auditWorkers = cfg.Workers
	}
	if !cmd.Flags().Changed("recursive") {
		auditRecursive = cfg.Recursive
	}
	if !cmd.Flags().Changed("output") && cfg.Output != "" {
		outputFile = cfg.Output
	}
}

func families() []metrics.Family {
	return []metrics.Family{
		metrics.Completeness{},
		metrics.Consistency{},
		metrics.Accuracy{Threshold: zThresh},
	}
}

func auditFile(path string) (string, error) {
	ds, err := ingest.Load(path, ingest.Options{})
	if err != nil {
		return "", err
	}

	report := metrics.Evaluate(ds, families(), auditWorkers)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("File: %s\n", path))
	b.WriteString(fmt.Sprintf("- Columns: %d\n", ds.NumColumns()))
	b.WriteString(fmt.Sprintf("- Rows: %d\n", ds.Rows()))
	for i := range report.Families {
		b.WriteString(render.Table(&report.Families[i]))
	}
	return b.String(), nil
}

func auditDirectory(dirPath string) string {
	options := connectors.DiscoveryOptions{
		Recursive: auditRecursive,
		MinSize:   minSize,
		MaxSize:   maxSize,
	}

	files, fileCount, err := connectors.DiscoverFiles(dirPath, connectors.DataExtensions, options)
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}
	if fileCount == 0 {
		return fmt.Sprintf("No data files found in %s\n", dirPath)
	}

	bar := progressbar.NewOptions(fileCount,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan][reset] Auditing files..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Found %d data files in %s\n", fileCount, dirPath))
	for _, file := range files {
		bar.Add(1)

		out, err := auditFile(file.Path)
		if err != nil {
			log.Printf("Failed to audit %s: %v", file.Path, err)
			continue
		}
		b.WriteString(fmt.Sprintf("\n==== %s (%s) ====\n", file.Path, humanize.Bytes(uint64(file.Size))))
		b.WriteString(out)
	}
	bar.Finish()

	return b.String()
}

func writeOutput(report string) {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(report), 0o644); err != nil {
			log.Fatalf("Failed to write to output file %s: %v", outputFile, err)
		}
		fmt.Printf("Results saved to %s\n", outputFile)
		return
	}
	fmt.Print(report)
}
