package commands

import (
	"fmt"
	"os"

	"github.com/Hocdoc/sandoc/internal/config"
	"github.com/Hocdoc/sandoc/internal/diff"
	"github.com/Hocdoc/sandoc/internal/styles"
)

// Diff compares two documents after converting both to the same output
// format, so a reStructuredText file can be diffed against its Markdown
// rewrite.
//
//	sandoc diff OLD NEW [--to FORMAT]
func Diff(args []string) {
	errorStyle := styles.ErrorStyle
	successStyle := styles.SuccessStyle

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ Error loading config: "+err.Error()))
		os.Exit(1)
	}

	positional := positionalArgs(args)
	if len(positional) != 2 {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ Usage: sandoc diff OLD NEW [--to FORMAT]"))
		os.Exit(1)
	}

	to := flagValue(args, "--to")
	if to == "" {
		to = cfg.DefaultTo
	}

	inputs := make([]diff.Input, 2)
	for i, path := range positional {
		content, err := readInput(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
			os.Exit(1)
		}
		inputs[i] = diff.Input{
			Path:    path,
			Content: content,
			Format:  detectFormat(path, cfg.DefaultFrom),
		}
	}

	unified, err := diff.Generate(inputs[0], inputs[1], to)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	if unified == "" {
		fmt.Println(successStyle.Render("✓ Documents are equivalent"))
		return
	}

	fmt.Print(diff.RenderTerminal(unified, cfg.PreviewWidth))
	os.Exit(1)
}
