// Package onboardpdf generates the Chronos Media onboarding packet: a fixed
// six page PDF carrying a volunteer's name, roles, email, date and an
// optional hand drawn signature.
package onboardpdf

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"onboardpdf/internal/config"
	"onboardpdf/internal/metrics"
	"onboardpdf/internal/model"
	"onboardpdf/internal/render"
	"onboardpdf/internal/service"
	"onboardpdf/internal/storage"
)

type (
	// Request describes one onboarding packet.
	Request = model.OnboardingRequest
	// Result reports where the packet went and how the signature was handled.
	Result = model.GenerateResult
	// SignatureOutcome is one of SignatureAbsent, SignatureEmbedded, SignatureFailed.
	SignatureOutcome = model.SignatureOutcome
	// ObjectStorage configures an S3 compatible store for s3://bucket/key outputs.
	ObjectStorage = config.MinIOConfig
	// Layout sets page geometry and document metadata.
	Layout = render.Layout
)

const (
	SignatureAbsent   = model.SignatureAbsent
	SignatureEmbedded = model.SignatureEmbedded
	SignatureFailed   = model.SignatureFailed
)

// Errors returned by Generate. Render failures wrap ErrRender.
var (
	ErrOutputPathRequired     = service.ErrOutputPathRequired
	ErrObjectStoreUnavailable = service.ErrObjectStoreUnavailable
	ErrBucketMismatch         = service.ErrBucketMismatch
	ErrInvalidLocation        = storage.ErrInvalidLocation
	ErrRender                 = render.ErrRender
)

// DefaultLayout is US Letter with 0.75 inch margins.
func DefaultLayout() Layout { return render.DefaultLayout() }

type options struct {
	baseDir    string
	objects    *ObjectStorage
	registerer prometheus.Registerer
	tracer     trace.Tracer
	layout     Layout
	linkExpiry time.Duration
}

// Option configures a Generator.
type Option func(*options)

// WithBaseDir resolves relative output paths against dir.
func WithBaseDir(dir string) Option {
	return func(o *options) { o.baseDir = dir }
}

// WithObjectStorage enables s3://bucket/key output paths.
func WithObjectStorage(cfg ObjectStorage) Option {
	return func(o *options) { o.objects = &cfg }
}

// WithRegisterer registers the generator's collectors on reg instead of a
// private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithTracer sets the tracer for generation spans. The global tracer
// provider is used otherwise.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithLayout overrides page geometry and document metadata.
func WithLayout(l Layout) Option {
	return func(o *options) { o.layout = l }
}

// WithLinkExpiry asks for a download link in every Result: presigned for
// object storage, a file:// URL for local files.
func WithLinkExpiry(d time.Duration) Option {
	return func(o *options) { o.linkExpiry = d }
}

// Generator produces onboarding packets. It is safe for concurrent use.
type Generator struct {
	svc service.OnboardingService
}

// NewGenerator builds a Generator. ctx bounds the object storage bucket check.
func NewGenerator(ctx context.Context, opts ...Option) (*Generator, error) {
	o := options{layout: render.DefaultLayout()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registerer == nil {
		o.registerer = prometheus.NewRegistry()
	}

	m, err := metrics.New(o.registerer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	deps := service.Dependencies{
		Files:      storage.NewFileStorage(o.baseDir),
		Renderer:   render.New(o.layout),
		Metrics:    m,
		Tracer:     o.tracer,
		LinkExpiry: o.linkExpiry,
	}
	if o.objects != nil && o.objects.Enabled() {
		objects, err := storage.NewMinIO(ctx, *o.objects)
		if err != nil {
			return nil, fmt.Errorf("object storage: %w", err)
		}
		deps.Objects = objects
		deps.Bucket = o.objects.Bucket
	}
	return &Generator{svc: service.NewOnboardingService(deps)}, nil
}

// Generate writes the packet for req to req.OutputPath.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	return g.svc.Generate(ctx, req)
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
	defaultErr  error
)

// GenerateOnboardingDocument writes the packet for req to the local path
// req.OutputPath. A missing or broken signature never fails the call; the
// packet then carries no signature or an error placeholder instead.
func GenerateOnboardingDocument(ctx context.Context, req Request) error {
	defaultOnce.Do(func() {
		defaultGen, defaultErr = NewGenerator(context.Background())
	})
	if defaultErr != nil {
		return defaultErr
	}
	_, err := defaultGen.Generate(ctx, req)
	return err
}
