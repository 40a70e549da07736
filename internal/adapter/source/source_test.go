package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"devops-reference/internal/config"
	"devops-reference/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertUnavailable(t *testing.T, err error) {
	t.Helper()
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %v", err)
	assert.Equal(t, domain.CodeSourceUnavailable, domainErr.Code)
}

func TestHTTPSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/assets/questions.json":
			_, _ = w.Write([]byte(`{}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	src, err := NewHTTPSource(server.URL+"/assets", time.Second)
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		body, err := src.Fetch(context.Background(), "questions.json")
		require.NoError(t, err)
		assert.Equal(t, "{}", string(body))
	})

	t.Run("not ok status", func(t *testing.T) {
		_, err := src.Fetch(context.Background(), "README.md")
		assertUnavailable(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := src.Fetch(ctx, "questions.json")
		assertUnavailable(t, err)
	})
}

func TestHTTPSource_FetchRejectsOversizedDocument(t *testing.T) {
	oversized := make([]byte, maxAssetSize+1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/README.md":
			_, _ = w.Write(oversized)
		default:
			_, _ = w.Write(oversized[:maxAssetSize])
		}
	}))
	defer server.Close()

	src, err := NewHTTPSource(server.URL, 5*time.Second)
	require.NoError(t, err)

	_, err = src.Fetch(context.Background(), "README.md")
	assertUnavailable(t, err)

	body, err := src.Fetch(context.Background(), "questions.json")
	require.NoError(t, err)
	assert.Len(t, body, maxAssetSize)
}

func TestNewHTTPSource_InvalidURL(t *testing.T) {
	_, err := NewHTTPSource("ftp://example.org", time.Second)
	assert.Error(t, err)

	_, err = NewHTTPSource("://bad", time.Second)
	assert.Error(t, err)
}

func TestFileSource_Fetch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# doc"), 0o644))
	src := NewFileSource(dir)

	body, err := src.Fetch(context.Background(), "README.md")
	require.NoError(t, err)
	assert.Equal(t, "# doc", string(body))

	_, err = src.Fetch(context.Background(), "questions.json")
	assertUnavailable(t, err)

	_, err = src.Fetch(context.Background(), "../etc/passwd")
	assertUnavailable(t, err)
}

func TestNew(t *testing.T) {
	src, err := New(config.SourceConfig{Dir: "web"})
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	src, err = New(config.SourceConfig{BaseURL: "http://localhost:1", Dir: "web"})
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, src)
}
