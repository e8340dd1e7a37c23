package skelegen

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Package document constants
const (
	PackageVersion  = "1.0"
	PackageFormat   = "skelementor-css-package"
	PackageEncoding = "base64"
	PackageExt      = ".skele"
)

// Package is a .skele document embedding a compiled stylesheet
type Package struct {
	Version   string         `json:"version"`
	Format    string         `json:"format"`
	Source    string         `json:"source"`
	CreatedAt string         `json:"created_at"` // ISO-8601
	Payload   PackagePayload `json:"payload"`
}

// PackagePayload holds the encoded stylesheet
type PackagePayload struct {
	Encoding string `json:"encoding"`
	CSS      string `json:"css"`
}

// NewPackage wraps css into a package stamped with now
func NewPackage(css, source string, now time.Time) Package {
	return Package{
		Version:   PackageVersion,
		Format:    PackageFormat,
		Source:    source,
		CreatedAt: now.UTC().Format(time.RFC3339),
		Payload: PackagePayload{
			Encoding: PackageEncoding,
			CSS:      base64.StdEncoding.EncodeToString([]byte(css)),
		},
	}
}

// WritePackage writes p as indented JSON
func WritePackage(w io.Writer, p Package) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode package: %w", err)
	}
	return nil
}

// ReadPackage decodes a package and returns it with its stylesheet
func ReadPackage(r io.Reader) (Package, string, error) {
	var p Package
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return p, "", fmt.Errorf("decode package: %w", err)
	}
	if p.Format != PackageFormat {
		return p, "", fmt.Errorf("unexpected package format %q", p.Format)
	}
	if p.Payload.Encoding != PackageEncoding {
		return p, "", fmt.Errorf("unsupported payload encoding %q", p.Payload.Encoding)
	}
	css, err := base64.StdEncoding.DecodeString(p.Payload.CSS)
	if err != nil {
		return p, "", fmt.Errorf("decode payload: %w", err)
	}
	return p, string(css), nil
}
