package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/agbarbie/rural-connect-cv-parser/internal/config"
	"github.com/agbarbie/rural-connect-cv-parser/internal/decode"
	"github.com/agbarbie/rural-connect-cv-parser/internal/engine"
	"github.com/agbarbie/rural-connect-cv-parser/internal/observability"
	"github.com/agbarbie/rural-connect-cv-parser/internal/schemas"
	"github.com/agbarbie/rural-connect-cv-parser/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Extract structured CV records from documents",
	Long:  "Parse one or more CV documents into structured JSON records. The MIME type is inferred from the file extension unless --mime is given. Multiple files are parsed concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var (
	parseConfigFile string
	parseOutDir     string
	parseMime       string
	parsePretty     bool
	parseValidate   bool
	parseVerbose    bool
	parseWorkers    int
)

func init() {
	parseCmd.Flags().StringVar(&parseConfigFile, "config", "", "Path to JSON config file")
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", "", "Directory for output JSON files (default: stdout)")
	parseCmd.Flags().StringVar(&parseMime, "mime", "", "Declared MIME type (default: inferred from extension)")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "Indent JSON output")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate records against the CV record schema")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a human-readable record summary")
	parseCmd.Flags().IntVar(&parseWorkers, "workers", 0, "Concurrent parses in batch mode")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	cfg := config.Config{
		OutDir:          parseOutDir,
		Mime:            parseMime,
		Pretty:          parsePretty,
		ValidateRecords: parseValidate,
		Verbose:         parseVerbose,
		Workers:         parseWorkers,
	}

	if parseConfigFile != "" {
		fileCfg, err := config.LoadConfig(parseConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	records := make([]*types.CVRecord, len(args))

	// Parse invocations share no state, so batch mode fans out safely.
	var g errgroup.Group
	g.SetLimit(cfg.EffectiveWorkers())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			mimeType := cfg.Mime
			if mimeType == "" {
				mimeType = inferMimeType(path)
			}

			record, err := engine.Parse(path, mimeType)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			if cfg.ValidateRecords {
				if err := schemas.ValidateCVRecord(record); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}

			records[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stderr)
	for i, record := range records {
		if cfg.Verbose {
			printer.PrintCVRecord(record)
		}
		if err := writeRecord(&cfg, args[i], record); err != nil {
			return err
		}
	}
	return nil
}

// inferMimeType maps a file extension to a supported MIME type; anything
// unrecognized is treated as plain text.
func inferMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return decode.MimePDF
	case ".doc":
		return decode.MimeDoc
	case ".docx":
		return decode.MimeDocx
	default:
		return decode.MimeText
	}
}

// writeRecord emits the record JSON to the output directory, or stdout when
// none is configured.
func writeRecord(cfg *config.Config, inputPath string, record *types.CVRecord) error {
	var (
		data []byte
		err  error
	)
	if cfg.Pretty {
		data, err = json.MarshalIndent(record, "", "  ")
	} else {
		data, err = json.Marshal(record)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal record for %s: %w", inputPath, err)
	}

	if cfg.OutDir == "" {
		fmt.Println(string(data))
		return nil
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outPath := filepath.Join(cfg.OutDir, base+".cv.json")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}
