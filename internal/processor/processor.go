package processor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"textreports/internal/processor/analysis"
	"textreports/internal/report"
	"textreports/internal/types"
	"time"
)

// Analyzer names accepted by CreateAnalyzer
const (
	AnalyzerStatistics = "statistics"
	AnalyzerConverter  = "converter"
	AnalyzerWordCount  = "wordcount"
)

// Analyzer interface for the load and compute stages of a pipeline
type Analyzer interface {
	Analyze(inputPath string, diag io.Writer, maxLineBytes int) (analysis.Report, error)
}

// WriteError reports a failure to persist the results file. The report has
// already been printed when it is returned.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// CreateAnalyzer is factory function to create analyzers
func CreateAnalyzer(analyzerName string) (Analyzer, error) {
	switch analyzerName {
	case AnalyzerStatistics:
		return &analysis.StatisticsAnalyzer{}, nil
	case AnalyzerConverter:
		return &analysis.ConverterAnalyzer{}, nil
	case AnalyzerWordCount:
		return &analysis.WordCountAnalyzer{}, nil
	default:
		return nil, fmt.Errorf("unknown analyzer: %s", analyzerName)
	}
}

// FileProcessor runs one Loader -> Analyzer -> Reporter pass and prints
// everything meant for the user to out.
type FileProcessor struct {
	config   types.ProcessingRequest
	analyzer Analyzer
	out      io.Writer
}

func NewFileProcessor(config types.ProcessingRequest, out io.Writer) (*FileProcessor, error) {
	analyzer, err := CreateAnalyzer(config.Analyzer)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}

	if out == nil {
		out = os.Stdout
	}

	if config.Start.IsZero() {
		config.Start = time.Now()
	}

	return &FileProcessor{
		config:   config,
		analyzer: analyzer,
		out:      out,
	}, nil
}

// ProcessFile analyzes inputPath, prints the report and saves it to outputPath
func (p *FileProcessor) ProcessFile(inputPath, outputPath string) error {
	log := slog.With("analyzer", p.config.Analyzer, "input", inputPath)

	err := p.validateInput(inputPath, outputPath)
	if err != nil {
		return err
	}

	log.Debug("Analyzing input")

	result, err := p.analyzer.Analyze(inputPath, p.out, p.config.MaxLineBytes)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	elapsed := time.Since(p.config.Start)
	body := result.Body(elapsed)

	_, err = fmt.Fprintln(p.out, body)
	if err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	err = report.Write(outputPath, inputPath, body)
	if err != nil {
		fmt.Fprintf(p.out, "Failed to save file: %v\n", err)
		log.Error("Failed to save results", "output", outputPath, "error", err)

		return &WriteError{Path: outputPath, Err: err}
	}

	fmt.Fprintln(p.out, "File saved successfully!")
	log.Info("Results saved", "output", outputPath, "elapsed", elapsed)

	return nil
}

func (p *FileProcessor) validateInput(inputPath, outputPath string) error {
	if inputPath == "" {
		return errors.New("input path cannot be empty")
	}

	if outputPath == "" {
		return errors.New("output path cannot be empty")
	}

	if inputPath == outputPath {
		return fmt.Errorf("output path '%s' would overwrite the input", outputPath)
	}

	return nil
}

// ProcessFile runs the named analyzer over inputPath and writes its results
// file next to it
func ProcessFile(inputPath string, config types.ProcessingRequest, out io.Writer) error {
	processor, err := NewFileProcessor(config, out)
	if err != nil {
		return err
	}

	return processor.ProcessFile(inputPath, report.ResultsPath(inputPath))
}
