package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPut(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir)

	res, err := l.Put(context.Background(), strings.NewReader(`{"items":[]}`), PutInput{
		Name:        "feed-20260829T101500.json",
		ContentType: "application/json",
	})
	require.NoError(t, err)
	assert.Equal(t, "feed-20260829T101500.json", res.Key)

	data, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, string(data))
}

func TestLocalDelete(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir)

	res, err := l.Put(context.Background(), strings.NewReader("{}"), PutInput{Name: "snap.json"})
	require.NoError(t, err)

	require.NoError(t, l.Delete(context.Background(), res.Key))
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "snap.json", objectKey("snap.json"))
	assert.Equal(t, "snap.json", objectKey("  snap.json "))
	assert.Equal(t, "snap.txt.json", objectKey("snap.txt"))
	assert.Equal(t, "snap.json", objectKey("../../snap.json"), "path traversal is stripped")

	generated := objectKey("")
	assert.True(t, strings.HasSuffix(generated, ".json"))
	assert.Greater(t, len(generated), len(".json"))
}

func TestFromEnvDefaultsToLocal(t *testing.T) {
	t.Setenv("SNAPSHOT_DRIVER", "")
	t.Setenv("SNAPSHOT_DIR", t.TempDir())

	res, err := FromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", res.Driver)
	assert.IsType(t, &Local{}, res.Storage)
}

func TestFromEnvUnknownDriver(t *testing.T) {
	t.Setenv("SNAPSHOT_DRIVER", "ftp")

	_, err := FromEnv(context.Background())
	assert.Error(t, err)
}

func TestFromEnvS3MissingConfig(t *testing.T) {
	t.Setenv("SNAPSHOT_DRIVER", "s3")
	t.Setenv("S3_REGION", "")
	t.Setenv("S3_BUCKET", "")

	_, err := FromEnv(context.Background())
	assert.Error(t, err)
}
