package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"encode", "-t", "-j", "3", "--output", "out", "a.txt", "b.txt"})
	require.NoError(t, err)
	require.Equal(t, "encode", opts.command)
	require.True(t, opts.text)
	require.Equal(t, 3, opts.jobs)
	require.Equal(t, "out", opts.output)
	require.Equal(t, []string{"a.txt", "b.txt"}, opts.files)

	_, err = parseArgs([]string{"explode", "a.txt"})
	require.ErrorContains(t, err, "unknown command")

	_, err = parseArgs([]string{"decode"})
	require.ErrorContains(t, err, "no input files")

	_, err = parseArgs([]string{"a.txt"})
	require.ErrorContains(t, err, "unknown command")
}

func TestParseArgs_DuplicateTargets(t *testing.T) {
	type testRow struct {
		name string
		args []string
		err  string
	}

	testData := [...]testRow{
		{name: "encode-same-base", args: []string{"encode", "-o", "out", "a/x.txt", "b/x.txt"}, err: "a/x.txt and b/x.txt both write out/x.txt.huf"},
		{name: "decode-same-base", args: []string{"decode", "-o", "out", "a/x.txt.huf", "b/x.txt.huf"}, err: "both write out/x.txt"},
		{name: "repeated-file", args: []string{"encode", "x.txt", "./x.txt"}, err: "both write x.txt.huf"},
		{name: "distinct-base", args: []string{"encode", "-o", "out", "a/x.txt", "b/y.txt"}},
		{name: "same-base-in-place", args: []string{"encode", "a/x.txt", "b/x.txt"}},
		{name: "stat-repeated", args: []string{"stat", "x.txt", "x.txt"}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			opts, err := parseArgs(row.args)
			if row.err == "" {
				require.NoError(t, err)
				require.NotNil(t, opts)
				return
			}
			require.ErrorContains(t, err, row.err)
			require.Nil(t, opts)
		})
	}
}

func TestRun_EncodeRejectsInvalidText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	require.NoError(t, os.WriteFile(path, []byte("caf\xe9"), 0o666))

	opts := &options{command: "encode", text: true, jobs: 1, files: []string{path}}
	err := run(&bytes.Buffer{}, opts)
	require.ErrorContains(t, err, "invalid UTF-8")
	require.NoFileExists(t, path+extension)

	opts.text = false
	require.NoError(t, run(&bytes.Buffer{}, opts))
	require.FileExists(t, path+extension)
}

func TestRun_EncodeDecode(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()

	inputs := map[string][]byte{
		"plain.txt": []byte("the quick brown fox jumps over the lazy dog"),
		"utf8.txt":  []byte("héllo wörld, ハフマン符号"),
		"empty.txt": nil,
		"one.txt":   []byte("aaaaaaaa"),
	}
	names := make([]string, 0, len(inputs))
	for name, data := range inputs {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o666))
		names = append(names, path)
	}

	for _, text := range []bool{false, true} {
		opts := &options{command: "encode", text: text, jobs: 2, files: names}
		require.NoError(t, run(&bytes.Buffer{}, opts))

		sealed := make([]string, 0, len(names))
		for _, name := range names {
			sealed = append(sealed, name+extension)
		}
		opts = &options{command: "decode", output: outDir, jobs: 2, files: sealed}
		require.NoError(t, run(&bytes.Buffer{}, opts))

		for name, data := range inputs {
			out, err := os.ReadFile(filepath.Join(outDir, name))
			require.NoError(t, err)
			require.Equal(t, string(data), string(out), "text=%v %s", text, name)
		}
	}
}

func TestRun_DecodeRejectsMissingSuffix(t *testing.T) {
	opts := &options{command: "decode", jobs: 1, files: []string{"nothing.txt"}}
	require.ErrorContains(t, run(&bytes.Buffer{}, opts), "missing .huf suffix")
}

func TestRun_Stat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("aaaaaaab"), 1000), 0o666))

	var out bytes.Buffer
	require.NoError(t, run(&out, &options{command: "stat", jobs: 1, files: []string{path}}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, path+": 8,000 bytes", lines[0])
	for i, name := range []string{"huffman", "zstd", "s2", "lz4"} {
		require.Contains(t, lines[i+1], name)
	}
}
