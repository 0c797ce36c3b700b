package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"

	"onboardpdf"
	"onboardpdf/internal/config"
	"onboardpdf/internal/logging"
	tracing "onboardpdf/internal/otel"
	"onboardpdf/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one generation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if flags.metricsTextfile != "" {
		cfg.MetricsTextfile = flags.metricsTextfile
	}
	logging.Init(cfg.Log)
	if flags.logLevel != "" {
		logging.SetLogLevel(flags.logLevel)
	}

	shutdown, err := tracing.Init(ctx)
	if err != nil {
		logging.Warn("tracing_disabled", "error", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logging.Warn("tracing_shutdown_failed", "error", err)
		}
	}()

	req, err := buildRequest(flags)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}

	reg := prometheus.NewRegistry()
	res, err := generate(ctx, cfg, reg, req, flags.linkExpiry)
	if cfg.MetricsTextfile != "" {
		if werr := prometheus.WriteToTextfile(cfg.MetricsTextfile, reg); werr != nil {
			logging.Warn("metrics_textfile_failed", "path", cfg.MetricsTextfile, "error", werr)
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitCodeFor(err)
	}

	fmt.Fprintf(stdout, "PDF generated successfully: %s\n", res.OutputPath)
	if res.URL != "" {
		fmt.Fprintf(stdout, "Download link: %s\n", res.URL)
	}
	if res.Signature == onboardpdf.SignatureFailed {
		fmt.Fprintf(stderr, "warning: signature not embedded: %s\n", res.SignatureError)
	}
	return ExitSuccess
}

// generate builds a Generator for req. Object storage is only dialed, and a
// download link only signed, when the output path needs it.
func generate(ctx context.Context, cfg *config.AppConfig, reg prometheus.Registerer, req onboardpdf.Request, linkExpiry time.Duration) (*onboardpdf.Result, error) {
	opts := []onboardpdf.Option{onboardpdf.WithRegisterer(reg)}
	if loc, err := storage.ParseLocation(req.OutputPath); err == nil && loc.Remote() && cfg.MinIO.Enabled() {
		opts = append(opts,
			onboardpdf.WithObjectStorage(cfg.MinIO),
			onboardpdf.WithLinkExpiry(linkExpiry),
		)
	}

	gen, err := onboardpdf.NewGenerator(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return gen.Generate(ctx, req)
}
