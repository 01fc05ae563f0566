// Package loader reads input files into numbers or words.
//
// Input may be plain text or gzip-compressed; compression is detected from the
// stream header rather than the file name.
package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// DefaultMaxLineBytes bounds a single input line for the numeric loader.
const DefaultMaxLineBytes = 1 << 20

// NumberList holds parsed values in file line order.
type NumberList []float64

// WordList holds whitespace-delimited tokens in appearance order.
type WordList []string

// MalformedLine describes a non-blank line that could not be parsed as a number
type MalformedLine struct {
	Line int    // 1-based line number
	Text string // trimmed line content
}

func (m MalformedLine) String() string {
	return fmt.Sprintf("Line %d skipped: '%s' is not a valid number.", m.Line, m.Text)
}

// Numbers is the result of loading a numeric file
type Numbers struct {
	Values  NumberList
	Skipped []MalformedLine
}

// LoadNumbers reads path line by line and parses every non-blank line as a
// float64. Lines that fail to parse are reported to diag as they are met and
// recorded in Skipped; loading continues with the next line. A missing file
// yields an error wrapping fs.ErrNotExist.
func LoadNumbers(path string, diag io.Writer, maxLineBytes int) (Numbers, error) {
	var result Numbers

	file, err := os.Open(path)
	if err != nil {
		return result, err
	}
	defer file.Close()

	reader, err := decode(file)
	if err != nil {
		return result, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLineBytes)), maxLineBytes)
	scanner.Split(scanLines)

	lineNum := 0

	for scanner.Scan() {
		lineNum++

		clean := strings.TrimSpace(scanner.Text())
		if clean == "" {
			continue
		}

		value, err := ParseNumber(clean)
		if err != nil {
			skipped := MalformedLine{Line: lineNum, Text: clean}
			result.Skipped = append(result.Skipped, skipped)

			if diag != nil {
				fmt.Fprintln(diag, skipped.String())
			}

			continue
		}

		result.Values = append(result.Values, value)
	}

	err = scanner.Err()
	if err != nil {
		return result, fmt.Errorf("failed to read %s at line %d: %w", path, lineNum+1, err)
	}

	return result, nil
}

// LoadWords reads the whole of path and splits it on runs of whitespace.
func LoadWords(path string) (WordList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return WordList(strings.Fields(string(content))), nil
}

// scanLines is bufio.ScanLines that also ends a line at a lone '\r', so files
// with old Mac line endings are read line by line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	i := bytes.IndexAny(data, "\r\n")
	switch {
	case i < 0:
		if atEOF {
			return len(data), data, nil
		}
	case data[i] == '\n':
		return i + 1, data[:i], nil
	case i+1 < len(data):
		if data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}

		return i + 1, data[:i], nil
	case atEOF:
		return i + 1, data[:i], nil
	}

	// need more data to tell "\r" from "\r\n"
	return 0, nil, nil
}

// decode wraps r in a gzip reader when the stream starts with the gzip magic bytes
func decode(r io.Reader) (io.Reader, error) {
	buffered := bufio.NewReader(r)

	magic, err := buffered.Peek(2)
	if err != nil || magic[0] != 0x1f || magic[1] != 0x8b {
		// short or plain input, read as-is
		return buffered, nil
	}

	return gzip.NewReader(buffered)
}
