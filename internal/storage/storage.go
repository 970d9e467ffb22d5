package storage

import (
	"context"
	"io"
)

// Storage はマーケティング資産（会社案内 PDF 等）の保存・配信を抽象化する
// インターフェース。ローカル実装の他、S3 / Cloudflare R2 等に差し替え可能。
type Storage interface {
	// Exists reports whether the asset at key is present. The brochure
	// download is gated on this check before any bytes are streamed.
	Exists(ctx context.Context, key string) (bool, error)

	// Open returns a reader over the asset and its size in bytes.
	Open(ctx context.Context, key string) (io.ReadCloser, int64, error)

	// Save stores an asset and returns its public URL.
	Save(ctx context.Context, key string, data io.Reader) (url string, err error)
}
