package storage

import (
	"context"
	"fmt"
	"os"
)

type FactoryResult struct {
	Driver  string
	Storage Storage
}

func FromEnv(ctx context.Context) (FactoryResult, error) {
	driver := os.Getenv("SNAPSHOT_DRIVER")
	if driver == "" {
		driver = "local"
	}

	switch driver {
	case "local":
		baseDir := envOr("SNAPSHOT_DIR", "./storage/snapshots")
		return FactoryResult{Driver: "local", Storage: NewLocal(baseDir)}, nil

	case "s3":
		region := os.Getenv("S3_REGION")
		bucket := os.Getenv("S3_BUCKET")
		if region == "" || bucket == "" {
			return FactoryResult{}, fmt.Errorf("s3 config missing: S3_REGION and S3_BUCKET required")
		}
		s, err := NewS3(ctx, S3Config{
			Region:        region,
			Bucket:        bucket,
			Prefix:        envOr("S3_PREFIX", "snapshots"),
			PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
		})
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "s3", Storage: s}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown SNAPSHOT_DRIVER: %s", driver)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
