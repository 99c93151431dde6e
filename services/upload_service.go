package services

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"redakce-cms/models"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type UploadService interface {
	// ImageName validates the extension and returns the stored name,
	// namespaced with a unix-timestamp prefix against collisions.
	ImageName(original string) (string, error)
	DiskPath(name string) string
	PublicURL(name string) string
}

type uploadService struct {
	dir     string
	baseURL string
}

func NewUploadService(dir, baseURL string) UploadService {
	return &uploadService{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *uploadService) ImageName(original string) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if !allowedImageExts[ext] {
		return "", models.E(models.ErrValidation, "Nepovolený typ souboru.")
	}

	base := filepath.Base(original)
	safe := unsafeFilenameChars.ReplaceAllString(base, "_")
	if safe == "" || safe == "." {
		safe = "obrazek" + ext
	}

	return fmt.Sprintf("%d_%s", time.Now().Unix(), safe), nil
}

func (s *uploadService) DiskPath(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *uploadService) PublicURL(name string) string {
	return s.baseURL + "/" + name
}
