// Package report renders report bodies into results files.
package report

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ResultsSuffix is appended to the full input path to name the results file.
const ResultsSuffix = ".results.txt"

// separatorWidth is the length of the dashed footer line.
const separatorWidth = 40

// ResultsPath returns the sibling results file for inputPath
func ResultsPath(inputPath string) string {
	return inputPath + ResultsSuffix
}

// Render wraps body with the results header and dashed footer.
func Render(inputPath, body string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Results for: %s ===\n", inputPath)
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", separatorWidth))
	b.WriteString("\n")

	return b.String()
}

// Write truncates outputPath and writes the rendered report for inputPath into it.
func Write(outputPath, inputPath, body string) error {
	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	writer := bufio.NewWriter(outputFile)

	_, err = writer.WriteString(Render(inputPath, body))
	if err != nil {
		outputFile.Close()
		return fmt.Errorf("failed to write results: %w", err)
	}

	err = writer.Flush()
	if err != nil {
		outputFile.Close()
		return fmt.Errorf("failed to flush results: %w", err)
	}

	return outputFile.Close()
}
