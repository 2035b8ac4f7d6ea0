package site

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/2beens/plainsite/internal/telemetry/metrics"
	"github.com/2beens/plainsite/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	PublicPrefix       = "/public/"
	defaultContentType = "application/octet-stream"
	megabyte           = 1024 * 1024
)

var ErrInvalidStaticPath = errors.New("invalid static path")

// StaticFiles serves files found under a single public directory.
// Paths are relative to that directory, e.g. "style.css" for /public/style.css.
type StaticFiles struct {
	rootDir string
	// rootDir with symlinks resolved, served files must stay below it
	realRoot string
	cache    *freecache.Cache
	metrics  *metrics.Manager
}

func NewStaticFiles(rootDir string, cacheSizeMB int, metrics *metrics.Manager) (*StaticFiles, error) {
	if exists, err := pkg.PathExists(rootDir, true); err != nil {
		return nil, fmt.Errorf("public dir %s: %w", rootDir, err)
	} else if !exists {
		return nil, fmt.Errorf("public dir %s does not exist", rootDir)
	}

	realRoot, err := filepath.EvalSymlinks(rootDir)
	if err != nil {
		return nil, fmt.Errorf("public dir %s: %w", rootDir, err)
	}

	if cacheSizeMB <= 0 {
		cacheSizeMB = 1
	}

	return &StaticFiles{
		rootDir:  rootDir,
		realRoot: realRoot,
		cache:    freecache.NewCache(cacheSizeMB * megabyte),
		metrics:  metrics,
	}, nil
}

// resolve maps a relative static path onto the filesystem, refusing anything
// that is not already canonical or that ends up outside the root dir,
// symlinks included.
func (s *StaticFiles) resolve(relPath string) (string, string, error) {
	if relPath == "" || strings.Contains(relPath, "..") || strings.ContainsRune(relPath, 0) {
		return "", "", ErrInvalidStaticPath
	}

	cleanPath := strings.TrimPrefix(path.Clean("/"+relPath), "/")
	if cleanPath == "" || cleanPath != relPath {
		return "", "", ErrInvalidStaticPath
	}

	fullPath, err := filepath.EvalSymlinks(filepath.Join(s.rootDir, filepath.FromSlash(cleanPath)))
	if err != nil {
		return "", "", err
	}

	rel, err := filepath.Rel(s.realRoot, fullPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", ErrInvalidStaticPath
	}

	return cleanPath, fullPath, nil
}

func (s *StaticFiles) Exists(relPath string) bool {
	_, fullPath, err := s.resolve(relPath)
	if err != nil {
		return false
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func (s *StaticFiles) Stream(relPath string) ([]byte, error) {
	cleanPath, fullPath, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}

	if content, err := s.cache.Get([]byte(cleanPath)); err == nil {
		if s.metrics != nil {
			s.metrics.CounterStaticCacheHits.Inc()
		}
		return content, nil
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: not a regular file", cleanPath)
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("read static file %s: %w", cleanPath, err)
	}

	// entries too large for the cache are just served uncached
	if err := s.cache.Set([]byte(cleanPath), content, 0); err != nil {
		log.Debugf("static file %s not cached: %s", cleanPath, err)
	}

	return content, nil
}

// ContentType infers the content type from the file extension.
func ContentType(relPath string) string {
	if ct := mime.TypeByExtension(filepath.Ext(relPath)); ct != "" {
		return ct
	}
	return defaultContentType
}
