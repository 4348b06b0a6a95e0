package main

import (
	"fmt"
	"os"

	"github.com/Hocdoc/sandoc/internal/commands"
	"github.com/Hocdoc/sandoc/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "convert":
		commands.Convert(os.Args[2:])
	case "preview":
		commands.Preview(os.Args[2:])
	case "diff":
		commands.Diff(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("sandoc v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`sandoc - Convert between documentation markup formats

Usage:
  sandoc <command> [options]

Commands:
  convert     Convert a document (rst, markdown → docbook, ast)
  preview     Convert and page the result in the terminal
  diff        Compare two documents in a common output format
  version     Show version information
  help        Show this help message

Examples:
  sandoc convert README.rst --to docbook --output readme.xml
  sandoc convert notes.md --to ast
  sandoc convert - --from rst < doc.rst
  sandoc preview manual.rst
  sandoc diff old.rst new.md --to docbook

Configuration:
  Config file: %s

For more information, visit: https://github.com/Hocdoc/sandoc
`, config.ConfigPath())
	fmt.Print(usage)
}
