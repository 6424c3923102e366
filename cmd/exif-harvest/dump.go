package main

import (
	"github.com/spf13/cobra"

	"github.com/evidenceworks/go-exif-harvest/internal/config"
	"github.com/evidenceworks/go-exif-harvest/internal/dump"
	"github.com/evidenceworks/go-exif-harvest/internal/exiftool"
	"github.com/evidenceworks/go-exif-harvest/internal/logger"
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <root-dir>",
		Short: "Export metadata for a directory tree to CSV via ExifTool",
		Long: `Recursively export metadata for PDFs, images, and videos to a single CSV
via ExifTool. The defaults request comprehensive output (RequestAll=3), enable
large-file support for videos, and cover the common evidence media types.`,
		Args: cobra.ExactArgs(1),
		RunE: runDump,
	}

	cmd.Flags().StringP("output", "o", config.DefaultOutputFile, "path to write the CSV file")
	cmd.Flags().StringSliceP("ext", "e", config.DefaultExtensions(), "file extensions to include")
	cmd.Flags().Int("request-all", config.DefaultRequestAll, "RequestAll API level passed to ExifTool")
	cmd.Flags().Bool("no-largefile-support", false, "disable ExifTool's large file support option")
	cmd.Flags().Bool("no-recursive", false, "do not recurse into subfolders")
	cmd.Flags().String("exiftool", config.DefaultExifTool, "ExifTool executable to invoke")
	cmd.Flags().BoolP("force", "f", false, "overwrite the output file if it already exists")
	cmd.Flags().Bool("manifest", false, "write a JSON manifest next to the CSV")

	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg := parseDumpConfig(cmd, args)

	logger.Infof("Dumping metadata under %s", cfg.RootDir)
	logger.Infof("Looking for file extensions: %v", cfg.Extensions)

	result, err := dump.Run(cfg, exiftool.NewRunner())
	if err != nil {
		return err
	}

	logger.Infof("Done. Metadata written to: %s", result.OutputFile)
	logger.Infof("Rows written: %d (%d bytes)", result.RowCount, result.SizeBytes)
	return nil
}

// parseDumpConfig collects the dump flags into a config struct
func parseDumpConfig(cmd *cobra.Command, args []string) config.DumpConfig {
	output, _ := cmd.Flags().GetString("output")
	extensions, _ := cmd.Flags().GetStringSlice("ext")
	requestAll, _ := cmd.Flags().GetInt("request-all")
	noLargeFile, _ := cmd.Flags().GetBool("no-largefile-support")
	noRecursive, _ := cmd.Flags().GetBool("no-recursive")
	exifTool, _ := cmd.Flags().GetString("exiftool")
	force, _ := cmd.Flags().GetBool("force")
	manifest, _ := cmd.Flags().GetBool("manifest")

	return config.DumpConfig{
		RootDir:          args[0],
		OutputFile:       output,
		Extensions:       extensions,
		RequestAll:       requestAll,
		LargeFileSupport: !noLargeFile,
		Recursive:        !noRecursive,
		ExifTool:         exifTool,
		Force:            force,
		WriteManifest:    manifest,
	}
}
