package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/company-site-api/internal/media"
	"github.com/gin-gonic/gin"
)

// openedUploads keeps the multipart files open until the handler is done
type openedUploads struct {
	uploads []media.Upload
	files   []multipart.File
}

func (o *openedUploads) Close() {
	for _, f := range o.files {
		f.Close()
	}
}

// openUploads opens every file sent under field. Requests that are not
// multipart carry no files.
func openUploads(c *gin.Context, field string) (*openedUploads, error) {
	opened := &openedUploads{}

	form, err := c.MultipartForm()
	if errors.Is(err, http.ErrNotMultipart) {
		return opened, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	for _, fh := range form.File[field] {
		f, err := fh.Open()
		if err != nil {
			opened.Close()
			return nil, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
		}
		opened.files = append(opened.files, f)
		opened.uploads = append(opened.uploads, media.Upload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Reader:      f,
		})
	}
	return opened, nil
}

// first returns the first upload, or nil when none was sent
func (o *openedUploads) first() *media.Upload {
	if len(o.uploads) == 0 {
		return nil
	}
	return &o.uploads[0]
}
