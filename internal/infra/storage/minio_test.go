package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinioStorageURL(t *testing.T) {
	client, err := newClient(Config{
		Endpoint:  "localhost:9000",
		AccessKey: "access",
		SecretKey: "secret-key",
		Region:    "us-east-1",
	})
	require.NoError(t, err)
	s := &MinioStorage{client: client, bucket: "receipts"}

	raw, err := s.URL(context.Background(), "user/42/abc.png", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "/receipts/user/42/abc.png", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestNewClientRejectsBadEndpoint(t *testing.T) {
	_, err := newClient(Config{Endpoint: "http://localhost:9000/path"})
	assert.Error(t, err)
}
