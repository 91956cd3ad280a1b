package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yildizm/recap/internal/formatter"
	"github.com/yildizm/recap/internal/ui"
)

var outlineOutputFile string

func newOutlineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Print the slides of the deck",
		Long: `Print an outline of the deck without playing it.

The output format follows the global --output flag: text shows a tree,
json, markdown and csv are meant for sharing or further processing.

Examples:
  recap outline
  recap outline --output markdown --output-file recap.md
  recap outline --config team.yaml -o json`,
		Args: cobra.NoArgs,
		RunE: runOutline,
	}

	cmd.Flags().StringVar(&outlineOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runOutline(cmd *cobra.Command, args []string) error {
	cfg, err := loadGlobalConfig()
	if err != nil {
		return err
	}

	d, err := cfg.Deck()
	if err != nil {
		return err
	}

	color := !noColor && !ui.IsColorDisabled() && cfg.Display.ColorMode != "never" && outlineOutputFile == ""
	f, err := formatter.New(getOutputFormat(), color)
	if err != nil {
		return err
	}

	output, err := f.Format(&formatter.Outline{
		Year:     cfg.Presentation.Year,
		TeamName: cfg.Presentation.TeamName,
		Deck:     d,
	})
	if err != nil {
		return fmt.Errorf("failed to format outline: %w", err)
	}

	if outlineOutputFile == "" {
		_, err := cmd.OutOrStdout().Write(output)
		return err
	}

	if err := writeOutputBytesToFile(output, outlineOutputFile); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}
	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Output saved to: %s\n", outlineOutputFile)
	}
	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}
	cleanPath := filepath.Clean(filePath)

	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
