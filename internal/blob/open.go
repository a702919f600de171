package blob

import (
	"context"
	"fmt"
)

// Options selects and configures a Storage backend.
type Options struct {
	Backend  string // local (default), s3, gcs
	LocalDir string
	Bucket   string
	Region   string
	Endpoint string
}

// Open creates the Storage named by opts.Backend.
func Open(ctx context.Context, opts Options) (Storage, error) {
	switch opts.Backend {
	case "", "local":
		if opts.LocalDir == "" {
			return nil, fmt.Errorf("local storage requires a directory")
		}
		return NewLocalStorage(opts.LocalDir), nil
	case "s3":
		if opts.Bucket == "" {
			return nil, fmt.Errorf("s3 storage requires a bucket")
		}
		return NewS3Storage(ctx, S3Config{
			Bucket:   opts.Bucket,
			Region:   opts.Region,
			Endpoint: opts.Endpoint,
		})
	case "gcs":
		if opts.Bucket == "" {
			return nil, fmt.Errorf("gcs storage requires a bucket")
		}
		return NewGCSStorage(ctx, opts.Bucket)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
