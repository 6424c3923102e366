package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/evidenceworks/go-exif-harvest/internal/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "exif-harvest",
		Short: "Harvest file metadata into CSV with ExifTool",
		Long: `A wrapper around ExifTool for surveying large evidence folders: dumps rich
per-file metadata into a single CSV, and summarizes ExifTool JSON output into
per-tag statistics that can be diffed between runs.`,
		PersistentPreRun: setupLogging,
		SilenceUsage:     true,
		SilenceErrors:    true,
	}

	// Logging flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose debugging output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("log-file", "", "log to file instead of stdout")

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newSummarizeCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Execute
	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("Error: %v", err)
		os.Exit(1)
	}
}

// setupLogging configures the logger based on command line flags
func setupLogging(cmd *cobra.Command, args []string) {
	// Check for verbose flag
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logger.LevelDebug)
		logger.Infof("Debug logging enabled")
	} else {
		logger.SetLevel(logger.LevelInfo)
	}

	// Check for no-color flag
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor {
		logger.DisableColors()
	}

	// Check for log file
	logFile, _ := cmd.Flags().GetString("log-file")
	if logFile != "" {
		// Open log file
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logger.Errorf("Failed to open log file: %v", err)
		} else {
			// Disable colors when logging to file
			logger.DisableColors()
			// Set up loggers with file output
			logger.Initialize(file, file)
			logger.Infof("Logging to file: %s", logFile)
		}
	}
}
