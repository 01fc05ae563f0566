package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func execute(program Program, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer

	code := Execute(program, time.Now(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestExecute_Programs(t *testing.T) {
	tests := []struct {
		name        string
		program     Program
		input       string
		expectedOut []string
	}{
		{
			name:        "statistics",
			program:     StatisticsProgram,
			input:       "1\n2\n3\n",
			expectedOut: []string{"COUNT: 3\n", "MEDIAN: 2.0\n", "File saved successfully!\n"},
		},
		{
			name:        "converter",
			program:     ConverterProgram,
			input:       "255\n",
			expectedOut: []string{"    1 255.0 | 11111111 | FF\n", "File saved successfully!\n"},
		},
		{
			name:        "word count",
			program:     WordCountProgram,
			input:       "go go gopher",
			expectedOut: []string{"go         -    2\n", "gopher     -    1\n", "File saved successfully!\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInput(t, tt.input)

			code, stdout, stderr := execute(tt.program, path)
			assert.Equal(t, ExitOK, code)
			assert.Empty(t, stderr)

			for _, want := range tt.expectedOut {
				assert.Contains(t, stdout, want)
			}

			data, err := os.ReadFile(path + ".results.txt")
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(data), "=== Results for: "+path+" ===\n"))
			assert.True(t, strings.HasSuffix(string(data), strings.Repeat("-", 40)+"\n"))
		})
	}
}

func TestExecute_InvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	code, stdout, _ := execute(StatisticsProgram, path)

	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, "Error: The path '"+path+"' is invalid.\n", stdout)

	_, err := os.Stat(path + ".results.txt")
	assert.True(t, os.IsNotExist(err))
}

func TestExecute_EmptyStatistics(t *testing.T) {
	path := writeInput(t, "oops\n")

	code, stdout, _ := execute(StatisticsProgram, path)

	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, "Line 1 skipped: 'oops' is not a valid number.\n"+
		"Error: No valid numbers found in '"+path+"'.\n", stdout)
}

func TestExecute_DirectoryInput(t *testing.T) {
	code, stdout, _ := execute(WordCountProgram, t.TempDir())

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stdout, "Error: ")
}

func TestExecute_Usage(t *testing.T) {
	t.Run("no arguments", func(t *testing.T) {
		code, _, stderr := execute(StatisticsProgram)
		assert.Equal(t, ExitUsage, code)
		assert.Contains(t, stderr, "compute_statistics: accepts 1 arg(s), received 0")
		assert.Contains(t, stderr, "Usage:")
	})

	t.Run("too many arguments", func(t *testing.T) {
		code, _, _ := execute(ConverterProgram, "a", "b")
		assert.Equal(t, ExitUsage, code)
	})

	t.Run("unknown flag", func(t *testing.T) {
		code, _, stderr := execute(WordCountProgram, "--bogus", "x")
		assert.Equal(t, ExitUsage, code)
		assert.Contains(t, stderr, "unknown flag")
	})

	t.Run("version", func(t *testing.T) {
		code, stdout, _ := execute(WordCountProgram, "--version")
		assert.Equal(t, ExitOK, code)
		assert.Equal(t, "word_count "+Version+"\n", stdout)
	})

	t.Run("help", func(t *testing.T) {
		code, stdout, _ := execute(ConverterProgram, "--help")
		assert.Equal(t, ExitOK, code)
		assert.Contains(t, stdout, "convert_numbers <path>")
	})
}

func TestExecute_Config(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "run.log")
	configFile := filepath.Join(dir, "textreports.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[log]\nlevel = \"info\"\nfile = \""+filepath.ToSlash(logFile)+"\"\n"), 0o644))

	path := writeInput(t, "4\n")

	code, _, stderr := execute(StatisticsProgram, "--config", configFile, path)
	require.Equal(t, ExitOK, code)
	assert.Contains(t, stderr, "Results saved")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Results saved")

	t.Run("invalid config", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(bad, []byte("[log]\nformat = \"xml\"\n"), 0o644))

		code, _, stderr := execute(StatisticsProgram, "-c", bad, path)
		assert.Equal(t, ExitFailure, code)
		assert.Contains(t, stderr, "invalid log format")
	})

	t.Run("flag overrides config", func(t *testing.T) {
		code, _, stderr := execute(StatisticsProgram, "--config", configFile, "--log-format", "json", path)
		assert.Equal(t, ExitOK, code)
		assert.Contains(t, stderr, `"msg":"Results saved"`)
	})
}
