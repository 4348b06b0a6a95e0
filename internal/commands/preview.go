package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/Hocdoc/sandoc/internal/config"
	"github.com/Hocdoc/sandoc/internal/converter"
	"github.com/Hocdoc/sandoc/internal/styles"
	"github.com/Hocdoc/sandoc/internal/tui"
)

// Preview converts a document and pages the result in the terminal.
//
//	sandoc preview INPUT [--from FORMAT] [--to FORMAT]
func Preview(args []string) {
	errorStyle := styles.ErrorStyle

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ Error loading config: "+err.Error()))
		os.Exit(1)
	}

	positional := positionalArgs(args)
	if len(positional) != 1 {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ Usage: sandoc preview INPUT [--from FORMAT] [--to FORMAT]"))
		os.Exit(1)
	}
	input := positional[0]

	from := flagValue(args, "--from")
	if from == "" {
		from = detectFormat(input, cfg.DefaultFrom)
	}
	to := flagValue(args, "--to")
	if to == "" {
		to = cfg.DefaultTo
	}

	src, err := readInput(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	result, err := converter.NewConverter(cfg.Floor()).Convert(src, from, to)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	content := result.Output
	// Markdown sources get a styled rendering of the source itself, the
	// converted output stays available via convert.
	if from == "markdown" || from == "md" {
		if rendered, err := renderMarkdown(src, cfg.PreviewWidth); err == nil {
			content = rendered
		}
	}

	m := tui.InitPreviewModel(tui.PreviewData{
		Title:       result.Title,
		Content:     content,
		Diagnostics: diagnosticLines(result.Diagnostics),
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ Error: "+err.Error()))
		os.Exit(1)
	}
}

func renderMarkdown(src string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(src)
}
