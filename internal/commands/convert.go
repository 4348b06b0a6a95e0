// Package commands implements the CLI subcommands.
package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hocdoc/sandoc/internal/config"
	"github.com/Hocdoc/sandoc/internal/converter"
	"github.com/Hocdoc/sandoc/internal/doc"
	"github.com/Hocdoc/sandoc/internal/logger"
	"github.com/Hocdoc/sandoc/internal/styles"
)

// Convert converts one or more documents and writes the result to a
// file or stdout.
//
//	sandoc convert INPUT... [--from FORMAT] [--to FORMAT] [--output FILE] [--title T] [--severity LEVEL] [--verbose]
func Convert(args []string) {
	errorStyle := styles.ErrorStyle
	successStyle := styles.SuccessStyle
	dimStyle := styles.DimStyle

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ Error loading config: "+err.Error()))
		os.Exit(1)
	}

	positional := positionalArgs(args)
	if len(positional) == 0 {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ Usage: sandoc convert INPUT... [--from FORMAT] [--to FORMAT] [--output FILE] [--title T] [--severity LEVEL] [--verbose]"))
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
	output := flagValue(args, "--output")

	floor := cfg.Floor()
	if severity := flagValue(args, "--severity"); severity != "" {
		level, err := config.ParseLevel(severity)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
			os.Exit(1)
		}
		floor = &level
	}

	// --verbose mirrors the log on stderr alongside the config log file.
	verbose := hasFlag(args, "--verbose")
	log := logger.Discard()
	switch {
	case verbose && cfg.LogFile != "":
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			defer f.Close()
			log = logger.NewMultiLogger(os.Stderr, f)
		} else {
			log = logger.New(os.Stderr)
		}
	case verbose:
		log = logger.New(os.Stderr)
	case cfg.LogFile != "":
		if l, cleanup, err := logger.NewFileLogger(cfg.LogFile); err == nil {
			defer cleanup()
			log = l
		}
	}

	log.ConfigLoaded(cfg.DefaultFrom, cfg.DefaultTo, cfg.MessageFloor)

	id := uuid.New().String()
	start := time.Now()
	log.ConversionStarted(id, input, from, to)

	// Multiple inputs are concatenated into one document.
	sources := make([]string, 0, len(positional))
	for _, path := range positional {
		src, err := readInput(path)
		if err != nil {
			log.ReadError(path, err)
			fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
			os.Exit(1)
		}
		sources = append(sources, src)
	}
	src := strings.Join(sources, "\n\n")

	conv := converter.NewConverter(floor)
	conv.Title = flagValue(args, "--title")
	result, err := conv.Convert(src, from, to)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	for _, d := range result.Diagnostics {
		log.Diagnostic(input, d.Severity.String(), d.Message)
	}
	log.ConversionCompleted(id, len(result.Diagnostics), time.Since(start))

	if err := writeOutput(output, result.Output); err != nil {
		log.WriteError(output, err)
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	if output != "" && output != "-" {
		fmt.Fprintln(os.Stderr, successStyle.Render(fmt.Sprintf("✓ Converted %s → %s", input, output)))
	}
	for _, d := range result.Diagnostics {
		name := d.Severity.String()
		fmt.Fprintln(os.Stderr, "  "+styles.Severity(name).Render(name+": "+d.Message))
	}

	if max, ok := converter.MaxSeverity(result.Diagnostics); ok && max >= doc.Error {
		fmt.Fprintln(os.Stderr, dimStyle.Render(fmt.Sprintf("  %d diagnostic(s), output rendered with fallbacks", len(result.Diagnostics))))
		os.Exit(1)
	}
}
