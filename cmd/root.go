package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabqa/tabqa/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tabqa",
	Short: "Tabular data quality auditor",
	Long: `tabqa audits CSV and TSV datasets for data quality:
completeness, consistency, and accuracy, per column and overall`,
}

func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.tabqa/config.yaml)")
}

func loadConfig() {
	c, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		c = config.Default()
	}
	cfg = c
}
