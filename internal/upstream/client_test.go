package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *ETAPIClient) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		BaseURL: srv.URL,
		Token:   "test-token",
		Timeout: 2 * time.Second,
	}, nil)
	return srv, client
}

func TestSearchSuccess(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []NoteMeta{{NoteID: "abc", Title: "Hello"}},
		})
	})

	results, err := client.Search(context.Background(), "hello", false, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "abc", results[0].NoteID)
}

func TestGetNotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Get(context.Background(), "missing")
	require.Error(t, err)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "missing", nf.NoteID)
}

func TestGetCachesMetadata(t *testing.T) {
	calls := 0
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(NoteMeta{NoteID: "n1", BlobID: "b1"})
	})

	meta1, err := client.Get(context.Background(), "n1")
	require.NoError(t, err)
	meta2, err := client.Get(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, meta1, meta2)
	assert.Equal(t, 1, calls)
}

func TestGetFreshBypassesCache(t *testing.T) {
	blob := "b1"
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(NoteMeta{NoteID: "n1", BlobID: blob})
	})

	cached, err := client.Get(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, "b1", cached.BlobID)

	blob = "b2"
	fresh, err := client.GetFresh(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, "b2", fresh.BlobID, "GetFresh must not return the stale cached blobId")

	recached, err := client.Get(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, "b2", recached.BlobID, "GetFresh should refresh the cache entry")
}

func TestUpstreamStatusError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := client.Get(context.Background(), "n1")
	require.Error(t, err)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 500, se.Status)
}

func TestPutContentRefetchesBlobID(t *testing.T) {
	blob := "b1"
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut:
			blob = "b2"
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(NoteMeta{NoteID: "n1", BlobID: blob})
		}
	})

	newBlob, err := client.PutContent(context.Background(), "n1", "new body")
	require.NoError(t, err)
	assert.Equal(t, "b2", newBlob)
}
