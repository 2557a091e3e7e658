package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDownloadBase = "http://localhost:8080/api/v1/files/marksheets"

func TestLocalStorePutAndOpen(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	store, err := NewLocalStore(t.TempDir(), testDownloadBase, signer)
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "abc-123.jpg", "image/jpeg", strings.NewReader("imagedata"))
	require.NoError(t, err)
	assert.Equal(t, "abc-123.jpg", ref)

	url, err := store.ResolveURL(ref)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, testDownloadBase+"/"))

	token := strings.TrimPrefix(url, testDownloadBase+"/")
	file, err := store.Open(token)
	require.NoError(t, err)
	defer file.Close()

	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "imagedata", string(content))
}

func TestLocalStoreReferenceOutlivesSignedLink(t *testing.T) {
	signer := &SignedURLSigner{secret: []byte("secret"), ttl: 30 * time.Millisecond}
	store, err := NewLocalStore(t.TempDir(), testDownloadBase, signer)
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "abc-123.jpg", "image/jpeg", strings.NewReader("imagedata"))
	require.NoError(t, err)
	assert.Equal(t, "abc-123.jpg", ref, "reference must be the bare key, not a signed link")

	staleURL, err := store.ResolveURL(ref)
	require.NoError(t, err)
	staleToken := strings.TrimPrefix(staleURL, testDownloadBase+"/")

	time.Sleep(60 * time.Millisecond)

	_, err = store.Open(staleToken)
	require.Error(t, err)

	freshURL, err := store.ResolveURL(ref)
	require.NoError(t, err)
	freshToken := strings.TrimPrefix(freshURL, testDownloadBase+"/")

	file, err := store.Open(freshToken)
	require.NoError(t, err)
	defer file.Close()

	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "imagedata", string(content))
}

func TestLocalStoreOpenRejectsBadToken(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	store, err := NewLocalStore(t.TempDir(), testDownloadBase, signer)
	require.NoError(t, err)

	_, err = store.Open("bogus-token")
	require.Error(t, err)
}

func TestLocalStoreRequiresSigner(t *testing.T) {
	_, err := NewLocalStore(t.TempDir(), "http://localhost:8080", nil)
	require.Error(t, err)
}
