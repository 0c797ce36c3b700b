package model

// OnboardingRequest carries the caller-supplied fields of one onboarding packet.
// It is a pure domain model: no validation happens here and the fields are
// rendered as given. SignatureImage is raw or data-URL prefixed base64.
type OnboardingRequest struct {
	Name           string   `json:"name" yaml:"name"`
	Roles          []string `json:"roles" yaml:"roles"`
	Email          string   `json:"email" yaml:"email"`
	Date           string   `json:"date" yaml:"date"`
	SignatureImage string   `json:"signature_image,omitempty" yaml:"signature_image,omitempty"`
	OutputPath     string   `json:"output_path" yaml:"output_path"`
}

// SignatureOutcome reports what happened to the signature payload.
type SignatureOutcome string

const (
	SignatureAbsent   SignatureOutcome = "absent"
	SignatureEmbedded SignatureOutcome = "embedded"
	SignatureFailed   SignatureOutcome = "failed"
)

// GenerateResult describes a produced document.
type GenerateResult struct {
	OutputPath     string           `json:"output_path"`
	Size           int64            `json:"size"`
	Pages          int              `json:"pages"`
	Signature      SignatureOutcome `json:"signature"`
	SignatureError string           `json:"signature_error,omitempty"`
	// SignatureSHA256 identifies the embedded signature image.
	SignatureSHA256 string `json:"signature_sha256,omitempty"`
	// URL is a download link, set when links were requested.
	URL string `json:"url,omitempty"`
}
