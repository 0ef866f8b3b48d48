package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"
)

const (
	contentTypeJSON        = "application/json"
	contentTypeOctetStream = "application/octet-stream"
	uploadFieldName        = "file"
)

// Payload is the body of a Request: either a *JSONPayload or a *FilePayload.
type Payload interface {
	encode() (body []byte, contentType string, err error)
}

// JSONPayload is serialized with encoding/json.
type JSONPayload struct {
	Value any
}

func (p *JSONPayload) encode() ([]byte, string, error) {
	body, err := json.Marshal(p.Value)
	if err != nil {
		return nil, "", fmt.Errorf("marshaling request body: %w", err)
	}

	return body, contentTypeJSON, nil
}

// FilePayload is sent as a multipart/form-data upload with a single "file" part.
type FilePayload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// NewFilePayload builds a FilePayload, detecting the MIME type from the
// filename's extension.
func NewFilePayload(filename string, content io.Reader) *FilePayload {
	return &FilePayload{
		Filename:    filename,
		ContentType: DetectContentType(filename),
		Content:     content,
	}
}

// DetectContentType returns the MIME type registered for the file's
// extension, or application/octet-stream.
func DetectContentType(filename string) string {
	if contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); contentType != "" {
		return contentType
	}

	return contentTypeOctetStream
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (p *FilePayload) encode() ([]byte, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	contentType := p.ContentType
	if contentType == "" {
		contentType = DetectContentType(p.Filename)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		uploadFieldName, quoteEscaper.Replace(filepath.Base(p.Filename))))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("creating form file: %w", err)
	}

	if p.Content != nil {
		if _, err := io.Copy(part, p.Content); err != nil {
			return nil, "", fmt.Errorf("copying file content: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
