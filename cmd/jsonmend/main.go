package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/quailyquaily/jsonmend"
)

const version = "1.0.0"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("jsonmend", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	inputPath := fs.String("input", "-", "input file path, - for stdin")
	outputPath := fs.String("output", "", "output file path, - for stdout")
	indent := fs.Int("indent", jsonmend.DefaultIndent, "spaces per indentation level")
	query := fs.String("query", "", "gjson path to extract from the result")
	setArg := fs.String("set", "", "path=value to apply before formatting")
	configPath := fs.String("config", "", "optional yaml config with defaults")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usageError()
	}
	if *showVersion {
		fmt.Printf("jsonmend %s\n", version)
		return nil
	}

	indentSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "indent" {
			indentSet = true
		}
	})
	if indentSet && *indent < 0 {
		return fmt.Errorf("indent must be a non-negative integer, got %d", *indent)
	}

	var cfg *fileConfig
	if strings.TrimSpace(*configPath) != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	indentWidth := jsonmend.DefaultIndent
	if cfg != nil && cfg.Indent != nil {
		indentWidth = *cfg.Indent
	}
	if indentSet {
		indentWidth = *indent
	}

	finalOutput := strings.TrimSpace(*outputPath)
	if finalOutput == "" && cfg != nil {
		finalOutput = strings.TrimSpace(cfg.Output)
	}

	raw, err := readInput(*inputPath)
	if err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		fmt.Fprintln(os.Stderr, "warning: empty input")
		return nil
	}

	text := raw
	if strings.TrimSpace(*setArg) != "" {
		path, value, err := splitSetArg(*setArg)
		if err != nil {
			return err
		}
		text, err = jsonmend.Patch(text, path, value)
		if err != nil {
			return err
		}
	}

	result, err := jsonmend.Beautify(text, indentWidth)
	if err != nil {
		return err
	}

	if strings.TrimSpace(*query) != "" {
		matched, err := jsonmend.Query(result, *query)
		if err != nil {
			return err
		}
		result, err = jsonmend.Beautify(matched, indentWidth)
		if err != nil {
			return err
		}
	}

	return writeOutput(finalOutput, result)
}
