package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage はローカルファイルシステムに資産を保存する Storage 実装。
type LocalStorage struct {
	baseDir   string // ディスク上のルートディレクトリ (例: "./assets")
	urlPrefix string // HTTP で配信する際の URL プレフィックス (例: "/assets")
}

// NewLocalStorage は LocalStorage を生成する。
func NewLocalStorage(baseDir, urlPrefix string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, urlPrefix: urlPrefix}
}

var _ Storage = (*LocalStorage)(nil)

func (s *LocalStorage) Exists(_ context.Context, key string) (bool, error) {
	info, err := os.Stat(filepath.Join(s.baseDir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("storage: stat: %w", err)
	}
	return !info.IsDir(), nil
}

func (s *LocalStorage) Open(_ context.Context, key string) (io.ReadCloser, int64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, key))
	if err != nil {
		return nil, 0, fmt.Errorf("storage: open: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("storage: stat: %w", err)
	}
	return f, info.Size(), nil
}

func (s *LocalStorage) Save(_ context.Context, key string, data io.Reader) (string, error) {
	dest := filepath.Join(s.baseDir, key)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("storage: write: %w", err)
	}

	return s.urlPrefix + "/" + key, nil
}
