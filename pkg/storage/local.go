package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore persists documents on disk under a base directory. Download
// URLs carry a signed token so raw filesystem paths never leave the server.
type LocalStore struct {
	baseDir string
	baseURL string
	signer  *SignedURLSigner
}

// NewLocalStore ensures the base directory exists and returns a handle.
// downloadBaseURL is the externally visible endpoint serving signed tokens,
// e.g. "http://localhost:8080/api/v1/files/marksheets".
func NewLocalStore(baseDir, downloadBaseURL string, signer *SignedURLSigner) (*LocalStore, error) {
	if baseDir == "" {
		baseDir = "./marksheets"
	}
	if signer == nil {
		return nil, fmt.Errorf("signed url signer required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create marksheets directory: %w", err)
	}
	return &LocalStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(downloadBaseURL, "/"),
		signer:  signer,
	}, nil
}

// Put writes the document to disk and returns the object key as the durable
// reference. Signed download links are minted per read via ResolveURL, so the
// stored reference never expires with the signing TTL.
func (s *LocalStore) Put(_ context.Context, key, _ string, body io.Reader) (string, error) {
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("prepare marksheet directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create marksheet file: %w", err)
	}
	defer file.Close() //nolint:errcheck

	if _, err := io.Copy(file, body); err != nil {
		return "", fmt.Errorf("write marksheet file: %w", err)
	}

	return key, nil
}

// ResolveURL mints a fresh signed download URL for a stored object key.
func (s *LocalStore) ResolveURL(ref string) (string, error) {
	token, _, err := s.signer.Generate(ref)
	if err != nil {
		return "", fmt.Errorf("sign marksheet url: %w", err)
	}
	return fmt.Sprintf("%s/%s", s.baseURL, token), nil
}

// Open resolves a signed token and returns a read-only handle to the file.
func (s *LocalStore) Open(token string) (*os.File, error) {
	key, _, err := s.signer.Parse(token)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open marksheet file: %w", err)
	}
	return file, nil
}
