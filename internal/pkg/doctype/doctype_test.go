package doctype

import (
	"errors"
	"testing"

	"github.com/docvault-io/docvault/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF")

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		want     string
		wantErr  bool
	}{
		{
			name:     "pdf accepted",
			filename: "report.pdf",
			data:     pdfBytes,
			want:     PDF,
		},
		{
			name:     "uppercase extension accepted",
			filename: "REPORT.PDF",
			data:     pdfBytes,
			want:     PDF,
		},
		{
			name:     "plain text rejected by extension",
			filename: "notes.txt",
			data:     []byte("just some text"),
			wantErr:  true,
		},
		{
			name:     "text content behind pdf extension rejected",
			filename: "fake.pdf",
			data:     []byte("this is not a pdf at all"),
			wantErr:  true,
		},
		{
			name:     "image rejected",
			filename: "photo.png",
			data:     []byte("\x89PNG\r\n\x1a\n"),
			wantErr:  true,
		},
		{
			name:     "missing filename rejected",
			filename: "",
			data:     pdfBytes,
			wantErr:  true,
		},
		{
			name:     "docx zip container accepted",
			filename: "letter.docx",
			data:     []byte("PK\x03\x04rest-of-zip"),
			want:     DOCX,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.filename, tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, apperr.InvalidInput("")))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
