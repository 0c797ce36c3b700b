package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"
)

var ErrUsage = errors.New("usage")

// cliFlags holds the parsed command line.
type cliFlags struct {
	request         string
	name            string
	roles           []string
	email           string
	date            string
	signatureFile   string
	out             string
	sample          bool
	metricsTextfile string
	logLevel        string
	linkExpiry      time.Duration

	// changed records which request fields were set explicitly so they
	// override a request file.
	changed map[string]bool
}

const usageHeader = `Usage: onboardpdf [flags]

Generates the Chronos Media onboarding packet.

Examples:
  onboardpdf --name "Jane Smith" --role "Photo Team" --email jane@x.com --date 2026-03-01 --out jane.pdf
  onboardpdf --request jane.yaml --signature-file sig.png
  onboardpdf --sample

Flags:
`

func newFlagSet(f *cliFlags, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("onboardpdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(stderr, usageHeader)
		fs.PrintDefaults()
	}

	fs.StringVarP(&f.request, "request", "r", "", "YAML or JSON request file")
	fs.StringVar(&f.name, "name", "", "volunteer name")
	fs.StringArrayVar(&f.roles, "role", nil, "volunteer role (repeatable)")
	fs.StringVar(&f.email, "email", "", "volunteer email")
	fs.StringVar(&f.date, "date", "", "acknowledgment date")
	fs.StringVar(&f.signatureFile, "signature-file", "", "signature image, or a file holding base64 / a data URL")
	fs.StringVarP(&f.out, "out", "o", "", "output path or s3://bucket/key")
	fs.BoolVar(&f.sample, "sample", false, "generate the John Doe example packet")
	fs.StringVar(&f.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file (overrides METRICS_TEXTFILE)")
	fs.DurationVar(&f.linkExpiry, "link-expiry", 24*time.Hour, "validity of the download link printed for s3:// outputs (0 disables)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	return fs
}

// parseFlags parses args (without the program name).
func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	f := &cliFlags{changed: map[string]bool{}}
	fs := newFlagSet(f, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, fs.Args())
	}
	if f.linkExpiry < 0 {
		return nil, fmt.Errorf("%w: --link-expiry must not be negative", ErrUsage)
	}
	if f.sample && f.request != "" {
		return nil, fmt.Errorf("%w: --sample and --request are exclusive", ErrUsage)
	}
	for _, name := range []string{"name", "role", "email", "date", "out"} {
		f.changed[name] = fs.Changed(name)
	}
	return f, nil
}

// sampleRequest is the example packet printed by --sample.
func sampleRequest() Request {
	return Request{
		Name:       "John Doe",
		Roles:      []string{"Live Team", "Audio Team"},
		Email:      "john.doe@example.com",
		Date:       "2026-01-10",
		OutputPath: filepath.Join(os.TempDir(), "test_onboarding.pdf"),
	}
}
