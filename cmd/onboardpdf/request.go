package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"onboardpdf"
)

// Request is the request file layout.
type Request = onboardpdf.Request

var (
	ErrReadRequest   = errors.New("read request file")
	ErrParseRequest  = errors.New("parse request file")
	ErrReadSignature = errors.New("read signature file")
)

// loadRequestFile decodes a YAML (or JSON) request.
func loadRequestFile(path string) (Request, error) {
	var req Request
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("%w: %w", ErrReadRequest, err)
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("%w %s: %w", ErrParseRequest, path, err)
	}
	return req, nil
}

// loadSignatureFile returns the payload for a signature file. Image files are
// base64 encoded; text files are taken as base64 or a data URL.
func loadSignatureFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSignature, err)
	}
	if strings.HasPrefix(http.DetectContentType(data), "image/") {
		return base64.StdEncoding.EncodeToString(data), nil
	}
	return strings.TrimSpace(string(data)), nil
}

// buildRequest merges the sample or request file with explicit flags.
func buildRequest(f *cliFlags) (Request, error) {
	var req Request
	switch {
	case f.sample:
		req = sampleRequest()
	case f.request != "":
		r, err := loadRequestFile(f.request)
		if err != nil {
			return req, err
		}
		req = r
	}

	if f.changed["name"] {
		req.Name = f.name
	}
	if f.changed["role"] {
		req.Roles = f.roles
	}
	if f.changed["email"] {
		req.Email = f.email
	}
	if f.changed["date"] {
		req.Date = f.date
	}
	if f.changed["out"] {
		req.OutputPath = f.out
	}

	if f.signatureFile != "" {
		sig, err := loadSignatureFile(f.signatureFile)
		if err != nil {
			return req, err
		}
		req.SignatureImage = sig
	}

	if req.OutputPath == "" {
		return req, fmt.Errorf("%w: --out or output_path is required", ErrUsage)
	}
	return req, nil
}
