package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"attrcodec/internal/attributes"
	"attrcodec/internal/document"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// envName selects the log encoding; "development" gives console output.
const envName = "ATTRCODEC_ENV"

// Encodings accepted by -from, and by -format for flatten.
const (
	encodingDocument = "document"
	encodingOTLPJSON = "otlp-json"
	encodingOTLP     = "otlp"
)

// exitError ends the program with a specific status.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d: %s", e.code, e.msg)
}

type config struct {
	command          string
	input            string
	separator        string
	format           document.Format
	otlpFormat       string
	from             string
	output           string
	key              string
	recurseSequences bool
	jsonSuffixes     []string
	verbose          bool
	environment      string
}

var commands = []string{"unflatten", "flatten", "get", "check"}

const usageText = `usage: attrcodec <command> [flags] [file]

Commands:
  unflatten   rebuild the nested tree from a flat attribute document
  flatten     turn a nested document into flat attributes
  get         print the value at -key in a nested document
  check       report invalid keys and collisions in a flat document

The document is read from file, or from standard input when file is
omitted or "-". YAML and JSON are both accepted.

Flags:
`

// parseConfig parses the command line. It returns a nil config when only
// help was requested.
func parseConfig(args []string, stderr io.Writer) (*config, error) {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "--help" {
		fs := newFlagSet(&config{}, stderr)
		fs.Usage()

		if len(args) == 0 {
			return nil, &exitError{code: exitUsage}
		}

		return nil, nil
	}

	cfg := &config{
		command:     args[0],
		environment: os.Getenv(envName),
	}

	known := false
	for _, c := range commands {
		if c == cfg.command {
			known = true
			break
		}
	}

	if !known {
		return nil, &exitError{code: exitUsage, msg: fmt.Sprintf("unknown command %q (want one of %s)",
			cfg.command, strings.Join(commands, ", "))}
	}

	fs := newFlagSet(cfg, stderr)

	var format string
	fs.StringVar(&format, "format", string(document.FormatYAML),
		"output format: yaml or json; flatten also accepts otlp-json and otlp")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil
		}

		return nil, &exitError{code: exitUsage}
	}

	if err := cfg.setFormat(format); err != nil {
		return nil, err
	}

	if err := cfg.checkInput(); err != nil {
		return nil, err
	}

	if cfg.output != "" && cfg.command == "check" {
		return nil, &exitError{code: exitUsage, msg: "-o does not apply to check"}
	}

	if cfg.separator == "" {
		return nil, &exitError{code: exitUsage, msg: "separator must not be empty"}
	}

	if cfg.command == "get" && cfg.key == "" {
		return nil, &exitError{code: exitUsage, msg: "get requires -key"}
	}

	switch fs.NArg() {
	case 0:
		cfg.input = "-"
	case 1:
		cfg.input = fs.Arg(0)
	default:
		return nil, &exitError{code: exitUsage, msg: "at most one input file may be given"}
	}

	return cfg, nil
}

func newFlagSet(cfg *config, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("attrcodec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.separator, "sep", attributes.DefaultSeparator, "key segment separator")
	fs.StringVar(&cfg.key, "key", "", "dotted key to look up (get)")
	fs.BoolVar(&cfg.recurseSequences, "recurse-sequences", false,
		"expand sequences of mappings into indexed keys (flatten)")
	fs.Func("json-suffix",
		"keys with this suffix hold JSON strings: decoded by unflatten, encoded by flatten (repeatable)",
		func(s string) error {
			if s == "" {
				return errors.New("suffix must not be empty")
			}

			cfg.jsonSuffixes = append(cfg.jsonSuffixes, s)

			return nil
		})
	fs.StringVar(&cfg.from, "from", encodingDocument,
		"input encoding: document, otlp-json or otlp (otlp encodings for unflatten and check)")
	fs.StringVar(&cfg.output, "o", "", "write output to this file instead of standard output")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug details to standard error")

	return fs
}

func (c *config) setFormat(format string) error {
	if format == encodingOTLPJSON || format == encodingOTLP {
		if c.command != "flatten" {
			return &exitError{code: exitUsage, msg: fmt.Sprintf("-format %s applies to flatten only", format)}
		}

		c.otlpFormat = format

		return nil
	}

	f, err := document.ParseFormat(format)
	if err != nil {
		return &exitError{code: exitUsage, msg: err.Error()}
	}

	c.format = f

	return nil
}

func (c *config) checkInput() error {
	switch c.from {
	case encodingDocument:
		return nil
	case encodingOTLPJSON, encodingOTLP:
		if c.command != "unflatten" && c.command != "check" {
			return &exitError{code: exitUsage, msg: fmt.Sprintf("-from %s applies to unflatten and check only", c.from)}
		}

		return nil
	default:
		return &exitError{code: exitUsage, msg: fmt.Sprintf("unknown input encoding %q (want document, otlp-json or otlp)", c.from)}
	}
}

// options translates the configuration into codec options.
func (c *config) options() []attributes.Option {
	opts := []attributes.Option{attributes.WithSeparator(c.separator)}

	if c.recurseSequences {
		opts = append(opts, attributes.WithRecurseOnSequence(true))
	}

	if len(c.jsonSuffixes) > 0 {
		opts = append(opts, attributes.WithJSONStringAttributes(c.jsonSuffixes...))
	}

	return opts
}
