package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// CSVFile wraps CSV content into a multipart form upload.
//
// File contents are returned as a buffer and a map for the HTTP request headers
func CSVFile(t *testing.T, filename, content string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)

	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", filename)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	if _, err := io.Copy(w, strings.NewReader(content)); err != nil {
		assert.Fail(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
