package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/company-site-api/internal/config"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// allowedTypes maps accepted extensions to the MIME types that may declare them.
var allowedTypes = map[string][]string{
	".jpg":  {"image/jpeg", "image/jpg", "image/pjpeg"},
	".jpeg": {"image/jpeg", "image/jpg", "image/pjpeg"},
	".png":  {"image/png"},
	".gif":  {"image/gif"},
}

// maxNameAttempts bounds retries when a generated name already exists.
const maxNameAttempts = 5

// Upload is an incoming file as received from a client.
type Upload struct {
	Name        string // original file name
	ContentType string // declared MIME type
	Size        int64  // declared size, zero if unknown
	Reader      io.Reader
}

// StoredFile describes a file written to the store.
type StoredFile struct {
	Path         string // generated name relative to the store root
	OriginalName string
	ContentType  string
	Size         int64
}

// Store persists uploaded images under generated names in a local directory.
type Store struct {
	root    string
	maxSize int64
	log     zerolog.Logger
	now     func() time.Time
}

// NewStore creates the storage root if needed and returns a Store for it.
func NewStore(cfg config.MediaConfig, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{
		root:    cfg.UploadDir,
		maxSize: cfg.MaxFileSize,
		log:     log.With().Str("component", "media").Logger(),
		now:     time.Now,
	}, nil
}

// Root returns the directory files are stored in.
func (s *Store) Root() string {
	return s.root
}

// Save validates an upload and writes it under a new unique name.
func (s *Store) Save(ctx context.Context, up Upload) (*StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(up.Name))
	if _, ok := allowedTypes[ext]; !ok {
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedType, ext)
	}
	if up.Size > s.maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrFileTooLarge, up.Size, s.maxSize)
	}

	// Read one byte past the limit so oversize bodies are detected without trusting Size.
	data, err := io.ReadAll(io.LimitReader(up.Reader, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrFileTooLarge, s.maxSize)
	}

	contentType := declaredType(up.ContentType)
	if !typeMatches(ext, contentType) {
		return nil, fmt.Errorf("%w: %s declared as %q", ErrUnsupportedType, up.Name, contentType)
	}
	// Bytes recognizable as another image format contradict the declared type.
	if detected := mimetype.Detect(data); strings.HasPrefix(detected.String(), "image/") && !typeMatches(ext, detected.String()) {
		return nil, fmt.Errorf("%w: %s declared as %q but contains %q", ErrUnsupportedType, up.Name, contentType, detected.String())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := s.write(ext, data)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("image_path", name).
		Str("original", up.Name).
		Int("size_bytes", len(data)).
		Msg("Image stored")

	return &StoredFile{
		Path:         name,
		OriginalName: filepath.Base(up.Name),
		ContentType:  contentType,
		Size:         int64(len(data)),
	}, nil
}

// write creates the file exclusively so an existing file is never overwritten.
func (s *Store) write(ext string, data []byte) (string, error) {
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := s.generateName(ext)
		f, err := os.OpenFile(filepath.Join(s.root, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create file: %w", err)
		}

		if _, err := io.Copy(f, bytes.NewReader(data)); err != nil {
			f.Close()
			os.Remove(f.Name())
			return "", fmt.Errorf("failed to write file: %w", err)
		}
		if err := f.Close(); err != nil {
			os.Remove(f.Name())
			return "", fmt.Errorf("failed to close file: %w", err)
		}
		return name, nil
	}
	return "", fmt.Errorf("failed to allocate a unique file name after %d attempts", maxNameAttempts)
}

// generateName builds "<unix millis>-<random>.<ext>".
func (s *Store) generateName(ext string) string {
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), strings.ReplaceAll(uuid.New().String(), "-", "")[:12], ext)
}

// Delete removes a stored file. A missing file is not an error.
func (s *Store) Delete(name string) error {
	clean, err := sanitizeName(name)
	if err != nil {
		return err
	}

	err = os.Remove(filepath.Join(s.root, clean))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", clean, err)
	}
	return nil
}

// Exists reports whether a stored file is present.
func (s *Store) Exists(name string) bool {
	clean, err := sanitizeName(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(filepath.Join(s.root, clean))
	return err == nil
}

// sanitizeName keeps only the base name so deletes never leave the root.
func sanitizeName(name string) (string, error) {
	clean := filepath.Base(filepath.Clean(name))
	if clean != name || clean == "." || clean == ".." || clean == "" || clean == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return clean, nil
}

// declaredType normalizes a Content-Type header by dropping parameters.
func declaredType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}

func typeMatches(ext, contentType string) bool {
	for _, allowed := range allowedTypes[ext] {
		if contentType == allowed {
			return true
		}
	}
	return false
}
