package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/tabqa/tabqa/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tabqa configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.Save(config.Default(), cfgFile); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		if cfgFile != "" {
			fmt.Printf("Wrote default config to %s\n", cfgFile)
		} else {
			fmt.Println("Wrote default config to ~/.tabqa/config.yaml")
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
