package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	nav "github.com/BastouP/Nav"
	main "github.com/BastouP/Nav/cmd/navindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMain returns a Main that ignores config files in the working directory.
func newMain() *main.Main {
	m := main.NewMain()
	m.ConfigFiles = nil
	return m
}

// writePages creates a pages directory under base holding files.
func writePages(t *testing.T, base string, files map[string]string) string {
	t.Helper()

	dir := filepath.Join(base, "pages")
	require.NoError(t, os.MkdirAll(dir, 0755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := newMain().Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	assert.Contains(t, helpOutput, "Usage:", "Help should have Kong-style Usage prefix")
	assert.Contains(t, helpOutput, "Flags:", "Help should have Kong-style Flags section")
	assert.Contains(t, helpOutput, "navindex")
}

func TestMain_Run_HelpCommand(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	err := newMain().Run(context.Background(), []string{"help"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestMain_Run_HelpFlagAfterOtherFlags(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	dir := writePages(t, base, map[string]string{"a.html": ""})
	out := filepath.Join(base, "pages.json")
	stdout := &bytes.Buffer{}

	err := newMain().Run(context.Background(), []string{"--dir", dir, "--output", out, "--help"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Usage:")
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "help should not write an index")
}

// A flag value spelled like a help keyword is still a value.
func TestMain_Run_DirectoryNamedHelp(t *testing.T) {
	// Given a pages folder called "help" in the working directory
	base := t.TempDir()
	dir := filepath.Join(base, "help")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte("<title>A</title>"), 0644))
	t.Chdir(base)

	for _, flag := range []string{"--dir", "-d"} {
		t.Run(flag, func(t *testing.T) {
			// When I point the command at it by relative name
			out := filepath.Join(t.TempDir(), "pages.json")
			stdout := &bytes.Buffer{}
			err := newMain().Run(context.Background(), []string{flag, "help", "--output", out}, stdout, &bytes.Buffer{})

			// Then the folder is indexed instead of help being shown
			require.NoError(t, err)
			assert.Equal(t, "Wrote 1 pages to "+out+"\n", stdout.String())
			got, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Contains(t, string(got), `"url": "pages/a.html"`)
		})
	}
}

func TestMain_Run_OutputNamedDashH(t *testing.T) {
	base := t.TempDir()
	dir := writePages(t, base, map[string]string{"a.html": ""})
	t.Chdir(base)

	stdout := &bytes.Buffer{}
	err := newMain().Run(context.Background(), []string{"--dir", dir, "--output=-h"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "Wrote 1 pages to -h\n", stdout.String())
	_, err = os.Stat(filepath.Join(base, "-h"))
	assert.NoError(t, err)
}

// Story: Building a Site Index
// Running the command turns a pages folder into pages.json

func TestMain_Run_WritesIndex(t *testing.T) {
	t.Parallel()

	// Given a pages folder with one document
	base := t.TempDir()
	dir := writePages(t, base, map[string]string{
		"about.html": `<title>About</title><meta name="keywords" content="x,y">`,
	})
	out := filepath.Join(dir, "pages.json")

	// When I run the command
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := newMain().Run(context.Background(), []string{"--dir", dir, "--output", out}, stdout, stderr)

	// Then it reports the count
	require.NoError(t, err)
	assert.Equal(t, "Wrote 1 pages to "+out+"\n", stdout.String())
	assert.Empty(t, stderr.String())

	// And the index describes the page with fallbacks applied
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	want := `[
  {
    "url": "pages/about.html",
    "title": "About",
    "display": "https://about",
    "keywords": "x,y",
    "desc": ""
  }
]`
	assert.Equal(t, want, string(got))
}

func TestMain_Run_OrdersByFilename(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	dir := writePages(t, base, map[string]string{
		"b.html": "<title>B</title>",
		"a.html": "<title>A</title>",
		"c.html": "<title>C</title>",
	})
	out := filepath.Join(base, "pages.json")

	err := newMain().Run(context.Background(), []string{"--dir", dir, "--output", out}, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(got)
	a := bytes.Index(got, []byte("pages/a.html"))
	b := bytes.Index(got, []byte("pages/b.html"))
	c := bytes.Index(got, []byte("pages/c.html"))
	require.NotEqual(t, -1, a, content)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestMain_Run_IsIdempotent(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	dir := writePages(t, base, map[string]string{
		"index.html":     `<title>Accueil – Café</title><meta name="description" content="Première page">`,
		"My Page!!.html": `<meta name="display" content="https://custom">`,
		"???.html":       ``,
	})
	out := filepath.Join(dir, "pages.json")
	args := []string{"--dir", dir, "--output", out}

	require.NoError(t, newMain().Run(context.Background(), args, &bytes.Buffer{}, &bytes.Buffer{}))
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	require.NoError(t, newMain().Run(context.Background(), args, &bytes.Buffer{}, &bytes.Buffer{}))
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, string(first), `"title": "Accueil – Café"`)
	assert.Contains(t, string(first), `"display": "https://lapage"`)
	assert.Contains(t, string(first), `"display": "https://???"`)
	assert.Contains(t, string(first), `"display": "https://custom"`)
}

func TestMain_Run_MissingDirectory(t *testing.T) {
	t.Parallel()

	// Given no pages folder
	base := t.TempDir()
	dir := filepath.Join(base, "pages")
	out := filepath.Join(base, "pages.json")

	// When I run the command
	err := newMain().Run(context.Background(), []string{"--dir", dir, "--output", out}, &bytes.Buffer{}, &bytes.Buffer{})

	// Then it fails with a filesystem error
	require.Error(t, err)
	assert.Equal(t, nav.EFILESYSTEM, nav.ErrorCode(err))

	// And no index is written
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "index should not be written")
}

func TestMain_Run_InvalidUTF8(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	dir := writePages(t, base, map[string]string{
		"good.html":   "<title>Good</title>",
		"latin1.html": "<title>caf\xe9</title>",
	})
	out := filepath.Join(base, "pages.json")

	t.Run("aborts by default", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "pages.json")

		err := newMain().Run(context.Background(), []string{"--dir", dir, "--output", out}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Equal(t, nav.EDECODE, nav.ErrorCode(err))
		_, err = os.Stat(out)
		assert.True(t, os.IsNotExist(err), "index should not be written")
	})

	t.Run("skips in lenient mode", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := newMain().Run(context.Background(), []string{"--dir", dir, "--output", out, "--lenient"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Wrote 1 pages")
		assert.Contains(t, stderr.String(), "skip document")
		assert.Contains(t, stderr.String(), "latin1.html")
	})
}

func TestMain_Run_GoqueryParser(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	dir := writePages(t, base, map[string]string{
		"qa.html": `<title>Q&amp;A</title><meta content="faq" name="keywords">`,
	})
	out := filepath.Join(base, "pages.json")

	err := newMain().Run(context.Background(), []string{"--dir", dir, "--output", out, "--parser", "goquery"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"title": "Q&A"`)
	assert.Contains(t, string(got), `"keywords": "faq"`)
}

func TestMain_Run_ConfigFile(t *testing.T) {
	t.Parallel()

	// Given a config file pointing at a pages folder
	base := t.TempDir()
	dir := writePages(t, base, map[string]string{
		"about.html": "<title>About</title>",
	})
	out := filepath.Join(base, "public", "index.json")
	config := filepath.Join(base, "navindex.yaml")
	content := "dir: " + dir + "\noutput: " + out + "\nurl_prefix: site\n"
	require.NoError(t, os.WriteFile(config, []byte(content), 0644))

	// When I run the command with the config flag
	stdout := &bytes.Buffer{}
	err := newMain().Run(context.Background(), []string{"--config", config}, stdout, &bytes.Buffer{})

	// Then the settings come from the file
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), out)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"url": "site/about.html"`)
}

func TestMain_Run_VerboseLogsProgress(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	dir := writePages(t, base, map[string]string{"a.html": ""})
	out := filepath.Join(base, "pages.json")
	stderr := &bytes.Buffer{}

	err := newMain().Run(context.Background(), []string{"-v", "--dir", dir, "--output", out}, &bytes.Buffer{}, stderr)

	require.NoError(t, err)
	logs := stderr.String()
	assert.Contains(t, logs, "list documents")
	assert.Contains(t, logs, "indexed document")
	assert.Contains(t, logs, "write index")
}

func TestMain_Run_UnknownFlag(t *testing.T) {
	t.Parallel()

	err := newMain().Run(context.Background(), []string{"--nope"}, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
}
