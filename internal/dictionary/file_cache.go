package dictionary

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
)

// FileCache keeps one JSON file per dictionary search page.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func cacheKey(keyword string, page int) string {
	return url.QueryEscape(keyword) + "_" + strconv.Itoa(page)
}

func (cache *FileCache) filePath(key string) string {
	return filepath.Join(cache.rootDir, key+".json")
}

// cache returns the stored body for key, or calls fetch and stores its body.
// A failed fetch stores nothing.
func (cache *FileCache) cache(key string, fetch func() ([]byte, error)) ([]byte, error) {
	path := cache.filePath(key)
	contents, err := os.ReadFile(path)
	if err == nil {
		return contents, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	contents, err = fetch()
	if err != nil {
		return nil, fmt.Errorf("fetch %s > %w", key, err)
	}
	if err := cache.store(path, contents); err != nil {
		return contents, err
	}
	return contents, nil
}

// store writes through a temporary file so a concurrent reader never sees a partial page.
func (cache *FileCache) store(path string, contents []byte) error {
	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.CreateTemp(cache.rootDir, ".page-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	defer func() {
		_ = os.Remove(file.Name())
	}()

	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Rename(file.Name(), path); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}
