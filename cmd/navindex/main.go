package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	nav "github.com/BastouP/Nav"
	"github.com/BastouP/Nav/fs"
	"github.com/BastouP/Nav/goquery"
	"github.com/BastouP/Nav/index"
	navregexp "github.com/BastouP/Nav/regexp"
	navslog "github.com/BastouP/Nav/slog"
	navyaml "github.com/BastouP/Nav/yaml"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// YAML files consulted for settings, in order. Missing files are ignored.
	ConfigFiles []string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigFiles: []string{nav.DefaultConfigFile},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("navindex"),
		kong.Description("Build the JSON page index of a static site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }), // Help exits through here
		Vars(),
		kong.Configuration(navyaml.Loader, m.ConfigFiles...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// "help" as the first argument is an alias for --help
	if len(args) > 0 && args[0] == "help" {
		args = []string{"--help"}
	}

	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	cfg := cli.NavConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Wire dependencies
	logger := NewLogger(stderr, cfg.Verbose)
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Logger: logger,
	}

	deps.Builder = &index.Builder{
		Source:    navslog.NewLoggingSource(fs.NewDirSource(cfg.Dir), logger),
		Extractor: newExtractor(cfg.Parser),
		URLPrefix: cfg.URLPrefix,
		Lenient:   cfg.Lenient,
	}
	deps.Writer = navslog.NewLoggingIndexWriter(fs.NewIndexWriter(cfg.Output), logger)

	cmd := &IndexCmd{Output: cfg.Output}
	return cmd.Run(deps)
}

// NewLogger returns a text logger on w. Only warnings and errors are
// logged unless verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newExtractor(parser nav.Parser) nav.MetaExtractor {
	if parser == nav.ParserGoquery {
		return goquery.NewExtractor()
	}
	return navregexp.NewExtractor()
}
