package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned when the uploaded filename does not carry an
// accepted image extension.
var ErrUnsupportedType = errors.New("only image files are allowed")

var allowedExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// Store writes uploaded images to a local directory under generated names and
// resolves stored filenames back to paths for streaming.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	err := os.MkdirAll(dir, 0o755)

	if err != nil {
		return nil, err
	}

	return &Store{dir: dir}, nil
}

// Save writes the uploaded file under a random name, preserving the original
// extension, and returns the stored relative path ("/uploads/<name><ext>").
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))

	if _, ok := allowedExts[ext]; !ok {
		return "", ErrUnsupportedType
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext

	src, err := fh.Open()

	if err != nil {
		return "", err
	}

	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))

	if err != nil {
		return "", err
	}

	_, err = io.Copy(dst, src)

	if cerr := dst.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		// don't leave a truncated file behind
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", err
	}

	return "/uploads/" + name, nil
}

// Resolve maps a stored filename to an on-disk path. The name is reduced to
// its basename so a crafted filename cannot escape the upload directory.
func (s *Store) Resolve(filename string) (string, error) {
	name := filepath.Base(filename)

	ext := strings.ToLower(filepath.Ext(name))

	if _, ok := allowedExts[ext]; !ok {
		return "", os.ErrNotExist
	}

	path := filepath.Join(s.dir, name)

	_, err := os.Stat(path)

	if err != nil {
		return "", err
	}

	return path, nil
}
