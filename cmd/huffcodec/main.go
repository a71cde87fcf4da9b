// huffcodec compresses and decompresses files with a Huffman code.
//
// Usage:
//
//	huffcodec encode [-t|--text] [-o DIR] <filename> [<filename> ...]
//	huffcodec decode [-o DIR] <filename>.huf [<filename>.huf ...]
//	huffcodec stat   [-t|--text] <filename> [<filename> ...]
//
// encode writes <filename>.huf next to each input (or into DIR); decode
// strips the .huf suffix.  stat prints the Huffman container size next to
// the sizes achieved by zstd, s2 and lz4.
//
// Options:
//
//	-t, --text          Treat input as UTF-8 text, one symbol per rune
//	-o, --output DIR    Write output files into DIR
//	-j, --jobs N        Process at most N files at once (default: NumCPU)
//	-v, --verbose       Print one status line per file
//	-h, -?, --help      Print help message
//	    --version       Print version information
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/huffcodec"
	"github.com/chronos-tachyon/huffcodec/internal/baseline"
)

const (
	version   = "1.0.0"
	extension = ".huf"
)

// options holds the parsed command line.
type options struct {
	command string
	text    bool
	output  string
	jobs    int
	verbose bool
	files   []string
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), "Usage: %s {encode|decode|stat} [options] <filename> [<filename> ...]\n\n", os.Args[0])
		fmt.Fprintf(fs.Output(), "Compress or decompress files with a Huffman code.\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fmt.Fprintf(fs.Output(), "  -t, --text          treat input as UTF-8 text\n")
		fmt.Fprintf(fs.Output(), "  -o, --output DIR    write output files into DIR\n")
		fmt.Fprintf(fs.Output(), "  -j, --jobs N        process at most N files at once\n")
		fmt.Fprintf(fs.Output(), "  -v, --verbose       verbose mode\n")
		fmt.Fprintf(fs.Output(), "  -h, -?, --help      print this message\n")
		fmt.Fprintf(fs.Output(), "      --version       print version information\n")
	}
}

// parseArgs parses args (without the program name).  A nil options with a
// nil error means the program should exit successfully without doing work.
func parseArgs(args []string) (*options, error) {
	fs := flag.NewFlagSet("huffcodec", flag.ContinueOnError)
	fs.Usage = usage(fs)

	var (
		opts     options
		showHelp bool
		showVer  bool
	)
	fs.BoolVar(&opts.text, "t", false, "treat input as UTF-8 text")
	fs.BoolVar(&opts.text, "text", false, "treat input as UTF-8 text")
	fs.StringVar(&opts.output, "o", "", "output directory")
	fs.StringVar(&opts.output, "output", "", "output directory")
	fs.IntVar(&opts.jobs, "j", runtime.NumCPU(), "maximum concurrent files")
	fs.IntVar(&opts.jobs, "jobs", runtime.NumCPU(), "maximum concurrent files")
	fs.BoolVar(&opts.verbose, "v", false, "verbose mode")
	fs.BoolVar(&opts.verbose, "verbose", false, "verbose mode")
	fs.BoolVar(&showHelp, "h", false, "print help message")
	fs.BoolVar(&showHelp, "help", false, "print help message")
	fs.BoolVar(&showHelp, "?", false, "print help message")
	fs.BoolVar(&showVer, "version", false, "print version information")

	if len(args) != 0 && !strings.HasPrefix(args[0], "-") {
		opts.command = args[0]
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if showHelp {
		fs.Usage()
		return nil, nil
	}
	if showVer {
		fmt.Fprintf(fs.Output(), "huffcodec %s\n", version)
		return nil, nil
	}

	switch opts.command {
	case "encode", "decode", "stat":
	case "":
		return nil, errors.New("missing command")
	default:
		return nil, errors.Errorf("unknown command %q", opts.command)
	}
	opts.files = fs.Args()
	if len(opts.files) == 0 {
		return nil, errors.New("no input files")
	}
	if opts.jobs < 1 {
		opts.jobs = 1
	}
	if err := opts.checkTargets(); err != nil {
		return nil, err
	}
	return &opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "huffcodec: %v\n", err)
		}
		os.Exit(1)
	}
	if opts == nil {
		os.Exit(0)
	}

	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "huffcodec: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, opts *options) error {
	if opts.command == "stat" {
		return statFiles(w, opts)
	}

	var g errgroup.Group
	g.SetLimit(opts.jobs)
	for _, name := range opts.files {
		name := name
		g.Go(func() error {
			switch opts.command {
			case "encode":
				return encodeFile(opts, name)
			default:
				return decodeFile(opts, name)
			}
		})
	}
	return g.Wait()
}

func (opts *options) kind() huffcodec.Kind {
	if opts.text {
		return huffcodec.KindText
	}
	return huffcodec.KindBytes
}

func (opts *options) outputPath(name string) string {
	if opts.output == "" {
		return name
	}
	return filepath.Join(opts.output, filepath.Base(name))
}

// target returns the file that encoding or decoding name writes to.
func (opts *options) target(name string) string {
	if opts.command == "encode" {
		return opts.outputPath(name) + extension
	}
	return opts.outputPath(strings.TrimSuffix(name, extension))
}

// checkTargets rejects input lists where two files would write the same
// output.
func (opts *options) checkTargets() error {
	if opts.command == "stat" {
		return nil
	}
	seen := make(map[string]string, len(opts.files))
	for _, name := range opts.files {
		target := filepath.Clean(opts.target(name))
		if prev, found := seen[target]; found {
			return errors.Errorf("%s and %s both write %s", prev, name, target)
		}
		seen[target] = name
	}
	return nil
}

func encodeFile(opts *options, name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	sealed, err := huffcodec.SealBytes(opts.kind(), data)
	if err != nil {
		return errors.Wrapf(err, "%s", name)
	}

	outName := opts.target(name)
	if err := os.WriteFile(outName, sealed, 0o666); err != nil {
		return err
	}

	if opts.verbose {
		fmt.Fprintf(os.Stderr, "File %s compressed to %s\n", name, outName)
	}
	return nil
}

func decodeFile(opts *options, name string) error {
	if !strings.HasSuffix(name, extension) {
		return errors.Errorf("%s: missing %s suffix", name, extension)
	}

	sealed, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	data, err := huffcodec.OpenBytes(sealed)
	if err != nil {
		return errors.Wrapf(err, "%s", name)
	}

	outName := opts.target(name)
	if err := os.WriteFile(outName, data, 0o666); err != nil {
		return err
	}

	if opts.verbose {
		fmt.Fprintf(os.Stderr, "File %s decompressed to %s\n", name, outName)
	}
	return nil
}

// fileStats is one row of stat output.
type fileStats struct {
	name     string
	original int
	huffman  int
	baseline []baseline.Result
}

func statFiles(w io.Writer, opts *options) error {
	rows := make([]fileStats, len(opts.files))

	var g errgroup.Group
	g.SetLimit(opts.jobs)
	for i, name := range opts.files {
		i, name := i, name
		g.Go(func() error {
			data, err := os.ReadFile(name)
			if err != nil {
				return err
			}

			sealed, err := huffcodec.SealBytes(opts.kind(), data)
			if err != nil {
				return errors.Wrapf(err, "%s", name)
			}

			results, err := baseline.Measure(data, baseline.All()...)
			if err != nil {
				return errors.Wrapf(err, "%s", name)
			}

			rows[i] = fileStats{name: name, original: len(data), huffman: len(sealed), baseline: results}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English) // For commas between thousands
	for _, row := range rows {
		p.Fprintf(w, "%s: %d bytes\n", row.name, row.original)
		p.Fprintf(w, "\t%-8s %12d bytes %s\n", "huffman", row.huffman, ratio(row.huffman, row.original))
		for _, r := range row.baseline {
			p.Fprintf(w, "\t%-8s %12d bytes %s\n", r.Name, r.Size, ratio(r.Size, row.original))
		}
	}
	return nil
}

func ratio(size, original int) string {
	if original == 0 {
		return "(n/a)"
	}
	return fmt.Sprintf("(%.1f%%)", 100*float64(size)/float64(original))
}
