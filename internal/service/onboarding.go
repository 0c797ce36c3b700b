package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"onboardpdf/internal/content"
	"onboardpdf/internal/document"
	"onboardpdf/internal/logging"
	"onboardpdf/internal/metrics"
	"onboardpdf/internal/model"
	tracing "onboardpdf/internal/otel"
	"onboardpdf/internal/render"
	"onboardpdf/internal/signature"
	"onboardpdf/internal/storage"
)

var (
	ErrOutputPathRequired     = errors.New("output path is required")
	ErrObjectStoreUnavailable = errors.New("object storage is not configured")
	ErrBucketMismatch         = errors.New("output bucket does not match configured bucket")
)

// ContentTypePDF is stored with every document.
const ContentTypePDF = "application/pdf"

// OnboardingService defines the use cases for onboarding documents.
type OnboardingService interface {
	// Generate produces the onboarding packet for req at req.OutputPath.
	// A broken signature degrades to a placeholder; only invalid output
	// locations, render failures and write failures return an error, and in
	// that case nothing is left at the output path.
	Generate(ctx context.Context, req model.OnboardingRequest) (*model.GenerateResult, error)
}

// Dependencies wires an OnboardingService. Only Files is required.
type Dependencies struct {
	Files    storage.Storage // local paths
	Objects  storage.Storage // s3:// paths; nil disables them
	Bucket   string          // bucket behind Objects
	Renderer *render.Renderer
	Metrics  *metrics.Metrics
	Tracer   trace.Tracer

	// LinkExpiry > 0 adds a download link valid that long to each result.
	LinkExpiry time.Duration
}

// onboardingService is a concrete implementation of OnboardingService.
type onboardingService struct {
	files    storage.Storage
	objects  storage.Storage
	bucket   string
	renderer *render.Renderer
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	expiry   time.Duration
}

// NewOnboardingService constructs a new OnboardingService.
func NewOnboardingService(deps Dependencies) OnboardingService {
	s := &onboardingService{
		files:    deps.Files,
		objects:  deps.Objects,
		bucket:   deps.Bucket,
		renderer: deps.Renderer,
		metrics:  deps.Metrics,
		tracer:   deps.Tracer,
		expiry:   deps.LinkExpiry,
	}
	if s.files == nil {
		s.files = storage.NewFileStorage("")
	}
	if s.renderer == nil {
		s.renderer = render.New(render.DefaultLayout())
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracing.TracerName)
	}
	return s
}

func (s *onboardingService) storeFor(loc storage.Location) (storage.Storage, error) {
	if !loc.Remote() {
		return s.files, nil
	}
	if s.objects == nil {
		return nil, ErrObjectStoreUnavailable
	}
	if loc.Bucket != s.bucket {
		return nil, fmt.Errorf("%w: %q (configured %q)", ErrBucketMismatch, loc.Bucket, s.bucket)
	}
	return s.objects, nil
}

func (s *onboardingService) Generate(ctx context.Context, req model.OnboardingRequest) (res *model.GenerateResult, err error) {
	runID := uuid.NewString()
	ctx, span := s.tracer.Start(ctx, "onboarding.generate", trace.WithAttributes(
		attribute.String("onboarding.run_id", runID),
		attribute.Int("onboarding.roles", len(req.Roles)),
	))
	defer func() {
		s.metrics.Document(err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logging.Error("document_failed", "run_id", runID, "output", req.OutputPath, "error", err)
		}
		span.End()
	}()

	loc, err := storage.ParseLocation(req.OutputPath)
	if err != nil {
		if errors.Is(err, storage.ErrEmptyKey) {
			return nil, ErrOutputPathRequired
		}
		return nil, err
	}
	store, err := s.storeFor(loc)
	if err != nil {
		return nil, err
	}

	sig := signature.Materialize(req.SignatureImage)
	s.metrics.Signature(sig.Outcome)
	span.SetAttributes(attribute.String("onboarding.signature", string(sig.Outcome)))
	if sig.Err != nil {
		logging.Warn("signature_degraded", "run_id", runID, "error", sig.Err)
	}

	for _, f := range [...]struct{ name, value string }{
		{"name", req.Name},
		{"roles", content.JoinRoles(req.Roles)},
		{"email", req.Email},
		{"date", req.Date},
	} {
		if lost := render.Unencodable(f.value); len(lost) > 0 {
			logging.Warn("text_not_encodable", "run_id", runID, "field", f.name, "runes", string(lost))
		}
	}

	blocks := document.Flatten(content.Assemble(req, sig.Block))

	start := time.Now()
	out, err := s.renderer.Render(blocks)
	s.metrics.ObserveRender(time.Since(start))
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("onboarding.pages", out.Pages))

	info, err := store.Put(ctx, loc.Key, bytes.NewReader(out.Bytes), storage.PutObjectOptions{
		Size:        int64(len(out.Bytes)),
		ContentType: ContentTypePDF,
		Metadata:    map[string]string{"document-type": "onboarding", "run-id": runID},
	})
	if err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}

	res = &model.GenerateResult{
		OutputPath:      loc.String(),
		Size:            info.Size,
		Pages:           out.Pages,
		Signature:       sig.Outcome,
		SignatureSHA256: sig.Digest,
	}
	if sig.Err != nil {
		res.SignatureError = sig.Err.Error()
	}
	if s.expiry > 0 {
		link, err := store.PresignGet(ctx, loc.Key, s.expiry)
		if err != nil {
			logging.Warn("presign_failed", "run_id", runID, "output", res.OutputPath, "error", err)
		} else {
			res.URL = link
		}
	}

	logging.Info("document_generated",
		"run_id", runID,
		"output", res.OutputPath,
		"bytes", res.Size,
		"pages", res.Pages,
		"signature", string(res.Signature),
	)
	return res, nil
}
