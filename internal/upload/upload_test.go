package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("image", filename)

	if err != nil {
		t.Fatalf("create form file: %v", err)
	}

	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write content: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	_, fh, err := req.FormFile("image")

	if err != nil {
		t.Fatalf("parse form file: %v", err)
	}

	return fh
}

func TestSaveAndResolve(t *testing.T) {
	s, err := NewStore(t.TempDir())

	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	content := []byte("fake image bytes")

	stored, err := s.Save(fileHeader(t, "logo.PNG", content))

	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !strings.HasPrefix(stored, "/uploads/") {
		t.Fatalf("stored path = %q, want /uploads/ prefix", stored)
	}

	// extension is preserved, lowercased
	if !strings.HasSuffix(stored, ".png") {
		t.Fatalf("stored path = %q, want .png suffix", stored)
	}

	// the generated name never reuses the client's filename
	if strings.Contains(stored, "logo") {
		t.Fatalf("stored path leaks the original filename: %q", stored)
	}

	path, err := s.Resolve(filepath.Base(stored))

	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	got, err := os.ReadFile(path)

	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}

	if !bytes.Equal(got, content) {
		t.Fatalf("stored content differs from upload")
	}
}

func TestSaveRejectsNonImage(t *testing.T) {
	s, err := NewStore(t.TempDir())

	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for _, name := range []string{"notes.txt", "payload.exe", "archive.tar.gz", "noext"} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Save(fileHeader(t, name, []byte("x")))

			if !errors.Is(err, ErrUnsupportedType) {
				t.Fatalf("got %v, want ErrUnsupportedType", err)
			}
		})
	}
}

func TestResolveIgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()

	s, err := NewStore(dir)

	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	// place a file outside the store
	outside := filepath.Join(dir, "..", "secret.png")

	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatalf("write outside file: %v", err)
	}

	t.Cleanup(func() { _ = os.Remove(outside) })

	if _, err := s.Resolve("../secret.png"); err == nil {
		t.Fatalf("traversal resolved a file outside the store")
	}

	if _, err := s.Resolve("missing.png"); err == nil {
		t.Fatalf("resolve of a missing file must fail")
	}

	if _, err := s.Resolve("config.yaml"); err == nil {
		t.Fatalf("non-image extension must not resolve")
	}
}
