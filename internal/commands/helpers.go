package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Hocdoc/sandoc/internal/converter"
)

// readInput reads a source document from a file, or from stdin when the
// path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(content), nil
}

// detectFormat guesses the input format from the file extension, falling
// back to the configured default for stdin or unknown extensions.
func detectFormat(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return "markdown"
	case ".rst", ".rest":
		return "rst"
	}
	return fallback
}

// writeOutput writes the rendered document to a file, or to stdout when
// the path is empty or "-".
func writeOutput(path, content string) error {
	if path == "" || path == "-" {
		_, err := fmt.Print(content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// boolFlags take no value, so the arg after them is positional.
var boolFlags = map[string]bool{
	"--verbose": true,
}

// flagValue scans args for "--name value" and returns the value.
func flagValue(args []string, name string) string {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// hasFlag reports whether a boolean flag is present.
func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

// positionalArgs returns the args that are not flags or flag values.
func positionalArgs(args []string) []string {
	var out []string
	skip := false
	for _, arg := range args {
		if skip {
			skip = false
			continue
		}
		if strings.HasPrefix(arg, "--") {
			skip = !boolFlags[arg]
			continue
		}
		out = append(out, arg)
	}
	return out
}

// diagnosticLines formats diagnostics for display, one line each.
func diagnosticLines(diags []converter.Diagnostic) []string {
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, fmt.Sprintf("%s: %s", d.Severity, d.Message))
	}
	return lines
}
