// Package doctype enforces the upload policy: only PDF, DOC and DOCX are
// accepted. The extension decides the canonical content type, magic-byte
// sniffing rejects payloads that are clearly something else.
package doctype

import (
	"path/filepath"
	"strings"

	"github.com/docvault-io/docvault/internal/pkg/apperr"
	"github.com/gabriel-vasile/mimetype"
)

const (
	PDF  = "application/pdf"
	DOC  = "application/msword"
	DOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var byExt = map[string]string{
	".pdf":  PDF,
	".doc":  DOC,
	".docx": DOCX,
}

// Detect validates filename and content and returns the canonical content
// type. Anything outside the policy set comes back as InvalidInput.
func Detect(filename string, data []byte) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", apperr.InvalidInput("filename is required")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	want, ok := byExt[ext]
	if !ok {
		return "", apperr.InvalidInput("unsupported document type: only PDF, DOC and DOCX are accepted")
	}

	mt := mimetype.Detect(data)
	switch {
	case mt.Is(want):
	case ext == ".docx" && mt.Is("application/zip"):
		// docx is a zip container; some producers lack the OOXML marker
	case ext == ".doc" && mt.Is("application/x-ole-storage"):
		// legacy doc is an OLE compound file
	default:
		return "", apperr.InvalidInput("file content does not match a supported document type")
	}

	return want, nil
}
