package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

const cacheRoot = "cache/pages"

// PathKey normalizes a request path into a cache key segment.
func PathKey(path string) string {
	key := strings.Trim(path, "/")
	if key == "" {
		key = "index"
	}
	return strings.ReplaceAll(key, "/", "_")
}

// GetCachePath returns the cache file path for a rendered page.
func GetCachePath(path string) string {
	key := PathKey(path)
	hash := generateHash(key)
	return filepath.Join(cacheRoot, fmt.Sprintf("%s_%s.html", key, hash[:16]))
}

// generateHash generates an xxHash hash for the given string
func generateHash(s string) string {
	hash := xxhash.Sum64String(s)
	return fmt.Sprintf("%016x", hash)
}

// WriteCache writes rendered HTML to the cache file for a path.
func WriteCache(path, html string) error {
	if err := os.MkdirAll(cacheRoot, 0755); err != nil {
		return err
	}
	return os.WriteFile(GetCachePath(path), []byte(html), 0644)
}

// ReadCache returns cached HTML for a path if present and not expired.
func ReadCache(path string, maxAge time.Duration) (string, bool) {
	cachePath := GetCachePath(path)

	info, err := os.Stat(cachePath)
	if err != nil {
		return "", false
	}

	if time.Since(info.ModTime()) > maxAge {
		return "", false
	}

	content, err := os.ReadFile(cachePath)
	if err != nil {
		return "", false
	}

	return string(content), true
}

// ClearCache removes the cache entry for one path.
func ClearCache(path string) error {
	err := os.Remove(GetCachePath(path))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ClearAll removes every cached page.
func ClearAll() error {
	return os.RemoveAll(cacheRoot)
}

// ClearOldCache removes cache files older than the specified duration.
func ClearOldCache(maxAge time.Duration) error {
	return filepath.Walk(cacheRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}

		if info.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		if time.Since(info.ModTime()) > maxAge {
			os.Remove(path)
		}

		return nil
	})
}
