package main

import (
	"context"
	"io"
	"log/slog"

	nav "github.com/BastouP/Nav"
	"github.com/BastouP/Nav/index"
	"github.com/alecthomas/kong"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Logger  *slog.Logger
	Builder *index.Builder
	Writer  nav.IndexWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    kong.ConfigFlag `short:"c" placeholder:"PATH" help:"Load settings from a YAML file"`
	Dir       string          `short:"d" default:"${dir}" help:"Directory holding the HTML pages"`
	Output    string          `short:"o" default:"${output}" help:"Path of the JSON index to write"`
	URLPrefix string          `name:"url-prefix" default:"${url_prefix}" help:"Prefix joined with each filename to form the page URL"`
	Parser    string          `enum:"regexp,goquery" default:"${parser}" help:"Metadata extractor (regexp or goquery)"`
	Lenient   bool            `help:"Skip unreadable documents instead of aborting"`
	Verbose   bool            `short:"v" help:"Log progress to stderr"`
}

// Vars returns the interpolation variables used by CLI defaults.
func Vars() kong.Vars {
	return kong.Vars{
		"dir":        nav.DefaultDir,
		"output":     nav.DefaultOutput,
		"url_prefix": nav.DefaultURLPrefix,
		"parser":     string(nav.DefaultParser),
	}
}

// NavConfig returns the parsed settings as a nav.Config.
func (c *CLI) NavConfig() nav.Config {
	return nav.Config{
		Dir:       c.Dir,
		Output:    c.Output,
		URLPrefix: c.URLPrefix,
		Parser:    nav.Parser(c.Parser),
		Lenient:   c.Lenient,
		Verbose:   c.Verbose,
	}
}
