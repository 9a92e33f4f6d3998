package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"attrcodec/internal/attributes"
	"attrcodec/internal/diagnostic"
	"attrcodec/internal/document"
	"attrcodec/internal/otlpattr"
)

// suggestionCount is how many keys get offers when a lookup fails.
const suggestionCount = 3

// run encapsulates the CLI so that it can be tested without exiting.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil || cfg == nil {
		return err
	}

	logger := newLogger(cfg, stderr)
	defer func() { _ = logger.Sync() }()

	if cfg.from != encodingDocument {
		pairs, err := readOTLP(cfg, stdin)
		if err != nil {
			return err
		}

		logger.Debug("OTLP attributes loaded",
			zap.String("input", cfg.input), zap.String("encoding", cfg.from), zap.Int("pairs", len(pairs)))

		if cfg.command == "check" {
			return runCheck(cfg, pairs, stdout)
		}

		return runUnflatten(cfg, pairs, stdout, logger)
	}

	doc, err := readInput(cfg.input, stdin)
	if err != nil {
		return err
	}

	logger.Debug("document loaded", zap.String("input", cfg.input), zap.Int("keys", len(doc)))

	switch cfg.command {
	case "unflatten":
		return runUnflatten(cfg, document.Pairs(doc), stdout, logger)
	case "flatten":
		return runFlatten(cfg, doc, stdout, logger)
	case "get":
		return runGet(cfg, doc, stdout, logger)
	case "check":
		return runCheck(cfg, document.Pairs(doc), stdout)
	default:
		return &exitError{code: exitUsage, msg: fmt.Sprintf("unknown command %q", cfg.command)}
	}
}

func readInput(input string, stdin io.Reader) (map[string]any, error) {
	var (
		doc map[string]any
		err error
	)

	if input == "-" {
		doc, err = document.Read(stdin)
	} else {
		doc, err = document.LoadFile(input)
	}

	if err != nil {
		return nil, &exitError{code: exitFailure, msg: err.Error()}
	}

	return doc, nil
}

func readOTLP(cfg *config, stdin io.Reader) ([]attributes.Pair, error) {
	var (
		data []byte
		err  error
	)

	if cfg.input == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(cfg.input)
	}

	if err != nil {
		return nil, &exitError{code: exitFailure, msg: fmt.Sprintf("failed to read OTLP input: %v", err)}
	}

	var pairs []attributes.Pair
	if cfg.from == encodingOTLP {
		pairs, err = otlpattr.DecodeKeyValueList(data)
	} else {
		pairs, err = otlpattr.DecodeKeyValueListJSON(data)
	}

	if err != nil {
		return nil, &exitError{code: exitFailure, msg: err.Error()}
	}

	return pairs, nil
}

func runUnflatten(cfg *config, pairs []attributes.Pair, stdout io.Writer, logger *zap.Logger) error {
	if len(cfg.jsonSuffixes) > 0 {
		loaded, err := attributes.LoadJSONStrings(pairs, cfg.jsonSuffixes...)
		if err != nil {
			return &exitError{code: exitFailure, msg: err.Error()}
		}

		pairs = loaded
	}

	diags := attributes.Check(pairs, cfg.options()...)
	logDiagnostics(logger, diags)

	tree, err := attributes.Unflatten(pairs, cfg.options()...)
	if err != nil {
		return &exitError{code: exitFailure, msg: err.Error()}
	}

	logger.Debug("attributes unflattened", zap.Int("pairs", len(pairs)), zap.Int("roots", len(tree)))

	return writeDocument(cfg, stdout, tree)
}

func runFlatten(cfg *config, doc map[string]any, stdout io.Writer, logger *zap.Logger) error {
	pairs, err := attributes.Flatten(doc, cfg.options()...)
	if err != nil {
		return &exitError{code: exitFailure, msg: err.Error()}
	}

	logger.Debug("attributes flattened", zap.Int("pairs", len(pairs)))

	if cfg.otlpFormat != "" {
		return writeOTLP(cfg, stdout, pairs)
	}

	return writeDocument(cfg, stdout, document.FromPairs(pairs))
}

func runGet(cfg *config, doc map[string]any, stdout io.Writer, logger *zap.Logger) error {
	value, ok := attributes.GetAttributeValue(doc, cfg.key, cfg.options()...)
	if !ok {
		d := diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        "not-found",
			Message:     "no value at key",
			Key:         cfg.key,
			Suggestions: attributes.Suggest(doc, cfg.key, suggestionCount, cfg.options()...),
		}

		logger.Debug("lookup failed", zap.String("key", cfg.key), zap.Strings("suggestions", d.Suggestions))

		return &exitError{code: exitFailure, msg: d.String()}
	}

	return writeDocument(cfg, stdout, value)
}

func runCheck(cfg *config, pairs []attributes.Pair, stdout io.Writer) error {
	diags := attributes.Check(pairs, cfg.options()...)

	for _, d := range diags.All() {
		if _, err := fmt.Fprintf(stdout, "%s: %s\n", d.Severity, d); err != nil {
			return err
		}
	}

	if err := diags.Error(); err != nil {
		return &exitError{code: exitFailure, msg: err.Error()}
	}

	return nil
}

func logDiagnostics(logger *zap.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		logger.Warn(d.Message, zap.String("code", d.Code), zap.String("key", d.Key))
	}

	for _, d := range diags.Infos {
		logger.Debug(d.Message, zap.String("code", d.Code), zap.String("key", d.Key))
	}
}

// writeDocument writes v to the -o file, or to stdout when none was given.
func writeDocument(cfg *config, stdout io.Writer, v any) error {
	if cfg.output != "" {
		if err := document.WriteFile(v, cfg.format, cfg.output); err != nil {
			return &exitError{code: exitFailure, msg: err.Error()}
		}

		return nil
	}

	data, err := document.Marshal(v, cfg.format)
	if err != nil {
		return &exitError{code: exitFailure, msg: err.Error()}
	}

	return writeBytes(cfg, stdout, data)
}

func writeOTLP(cfg *config, stdout io.Writer, pairs []attributes.Pair) error {
	kvs := otlpattr.ToOTLP(pairs)

	var (
		data []byte
		err  error
	)

	if cfg.otlpFormat == encodingOTLP {
		data, err = otlpattr.EncodeKeyValueList(kvs)
	} else {
		data, err = otlpattr.EncodeKeyValueListJSON(kvs)
	}

	if err != nil {
		return &exitError{code: exitFailure, msg: err.Error()}
	}

	return writeBytes(cfg, stdout, data)
}

func writeBytes(cfg *config, stdout io.Writer, data []byte) error {
	if cfg.output != "" {
		if err := os.WriteFile(cfg.output, data, 0644); err != nil {
			return &exitError{code: exitFailure, msg: fmt.Sprintf("failed to write output %s: %v", cfg.output, err)}
		}

		return nil
	}

	if _, err := stdout.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
