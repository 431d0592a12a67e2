package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/g2x/g2x/batch"
	"github.com/ZanzyTHEbar/g2x/g2x/resolve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliFixture struct {
	dir     string
	config  string
	listing string
	refs    string
}

func newCLIFixture(t *testing.T) cliFixture {
	t.Helper()
	dir := t.TempDir()
	f := cliFixture{
		dir:     dir,
		config:  filepath.Join(dir, "config.yaml"),
		listing: filepath.Join(dir, "files.txt"),
		refs:    filepath.Join(dir, "refs.tsv"),
	}
	write := func(path, content string) {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write(f.config, "log:\n  level: error\nbatch:\n  workers: 2\n")
	write(f.listing, strings.Join([]string{
		"./CV-LAN/CVLAN1/DSC00800.jpg",
		"./CV-LAN/CVLAN1/t__DSC00800.jpg",
		"./dreamhack/dreamhack_97/martin_ojes/p000335.jpg",
		"./index.html",
	}, "\n"))
	write(f.refs, "1\tcv-lan/cvlan1/dsc00800.jpg\n2\tdreamhack/dreamhack 97/martin_ojes/p000335.jpg\n3\tnonexistent/missing.png\n")
	return f
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestIndexCommand(t *testing.T) {
	f := newCLIFixture(t)

	out, err := runCLI(t, "index", "-c", f.config, "-l", f.listing, "--dirs", "dreamhack")
	require.NoError(t, err)
	assert.Contains(t, out, "Entries")
	assert.Contains(t, out, "dreamhack/dreamhack_97/martin_ojes")
}

func TestResolveCommand(t *testing.T) {
	f := newCLIFixture(t)

	out, err := runCLI(t, "resolve", "-c", f.config, "-l", f.listing,
		"CV-LAN/CVLAN1/DSC00800.jpg",
		"dreamhack/dreamhack 97/martin_ojes/p000335.jpg",
		"nonexistent/missing.png",
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "\tCV-LAN/CVLAN1/DSC00800.jpg\texact")
	assert.Contains(t, lines[1], "\tdreamhack/dreamhack_97/martin_ojes/p000335.jpg\tconsensus")
	assert.Contains(t, lines[2], "unresolved")
}

func TestResolveCommandPlainStrategy(t *testing.T) {
	f := newCLIFixture(t)

	out, err := runCLI(t, "resolve", "-c", f.config, "-l", f.listing, "--strategy", "single", "--plain",
		"dreamhack/dreamhack 97/martin_ojes/p000335.jpg")
	require.NoError(t, err)
	assert.Contains(t, out, "unresolved", "the plain matcher does not bridge space and underscore in directories")
}

func TestBatchCommand(t *testing.T) {
	f := newCLIFixture(t)

	out, err := runCLI(t, "batch", "-c", f.config, "-l", f.listing, f.refs)
	require.NoError(t, err)
	assert.Contains(t, out, "case-insensitive")
	assert.Contains(t, out, "consensus")
	assert.Contains(t, out, "Missing")

	out, err = runCLI(t, "batch", "-c", f.config, "-l", f.listing, "--only-unresolved", f.refs)
	require.NoError(t, err)
	assert.Contains(t, out, "nonexistent/missing.png")
	assert.NotContains(t, out, "dreamhack_97")
}

func TestCommandErrors(t *testing.T) {
	f := newCLIFixture(t)

	_, err := runCLI(t, "index", "-c", f.config)
	assert.ErrorIs(t, err, errNoListing)

	_, err = runCLI(t, "resolve", "-c", f.config, "-l", filepath.Join(f.dir, "nope.txt"), "a/b.jpg")
	assert.Error(t, err)

	_, err = runCLI(t, "index", "-c", f.config, "-l", f.listing, "--strategy", "vote")
	assert.Error(t, err)

	_, err = runCLI(t, "batch", "-c", f.config, "-l", f.listing)
	assert.Error(t, err, "batch needs a references file")
}

func TestResultsTable(t *testing.T) {
	results := []batch.Result{
		{Reference: batch.Reference{ID: "1", Parsed: resolve.ParsePath("a/b.jpg")}, Match: resolve.Match{Path: "a/b.jpg", Score: 1, Method: resolve.MethodExact}},
		{Reference: batch.Reference{ID: "2", Parsed: resolve.ParsePath("a/c.jpg")}},
	}

	out, rows := resultsTable(results, false)
	assert.Equal(t, 2, rows)
	assert.Contains(t, out, "exact")
	assert.Contains(t, out, "1.000")

	out, rows = resultsTable(results, true)
	assert.Equal(t, 1, rows)
	assert.Contains(t, out, "a/c.jpg")
	assert.Contains(t, out, "unresolved")
	assert.NotContains(t, out, "exact")
}
