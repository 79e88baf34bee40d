// Package main provides the CLI entry point for go-xlsxgen.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen"
)

var (
	outputPath string
	sheetName  string
	delimiter  string
	creator    string
	strict     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlsxgen [input.csv]",
		Short: "Convert CSV data to an Excel workbook",
		Long: `xlsxgen reads delimited text and writes an .xlsx workbook. Numeric
fields become numeric cells; everything else is stored as shared strings.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input name with .xlsx)")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "Sheet1", "Worksheet title")
	rootCmd.Flags().StringVar(&delimiter, "delimiter", ",", "Field delimiter")
	rootCmd.Flags().StringVar(&creator, "creator", "", "Document creator recorded in core properties")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail on relationships that cannot be serialized")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	if len(delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", delimiter)
	}

	if strict {
		cfg := xlsxgen.GetGlobalConfig()
		cfg.StrictMode = true
		xlsxgen.SetGlobalConfig(cfg)
	}

	records, err := readRecords(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	wb := xlsxgen.NewWorkbook()
	if creator != "" {
		wb.Core.Creator = creator
		wb.Core.LastModifiedBy = creator
	}

	ws, err := wb.AddSheet(sheetName)
	if err != nil {
		return err
	}

	for rowIdx, record := range records {
		for colIdx, field := range record {
			ref := xlsxgen.Ref{Column: colIdx + 1, Row: rowIdx + 1}
			cell := ws.CellAt(ref)
			if n, err := strconv.ParseFloat(field, 64); err == nil && field != "" {
				cell.SetNumber(n)
				continue
			}
			if err := ws.SetString(ref.String(), field); err != nil {
				return err
			}
		}
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, ".csv") + ".xlsx"
	}

	if err := wb.Save(outputPath); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func readRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = rune(delimiter[0])
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
