package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/shutter/internal/config"
	"github.com/five82/shutter/internal/pixabay"
	"github.com/five82/shutter/internal/search"
)

type pagedFetcher struct {
	pages map[int]pixabay.Result
	calls []int
}

func (f *pagedFetcher) FetchImages(_ context.Context, _ string, page int) (pixabay.Result, error) {
	f.calls = append(f.calls, page)
	return f.pages[page], nil
}

func makeHits(start, n int) []pixabay.Hit {
	out := make([]pixabay.Hit, n)
	for i := range out {
		id := start + i
		out[i] = pixabay.Hit{
			ID:            int64(id),
			Tags:          fmt.Sprintf("tag%d", id),
			WebformatURL:  fmt.Sprintf("https://cdn.example/%d_640.jpg", id),
			LargeImageURL: fmt.Sprintf("https://cdn.example/%d_1280.jpg", id),
			Likes:         id,
		}
	}
	return out
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.APIKeyEnv, "")
	return filepath.Join(home, "missing.toml")
}

func TestQuery_JSONLoadsRequestedPages(t *testing.T) {
	cfgPath := isolate(t)
	f := &pagedFetcher{pages: map[int]pixabay.Result{
		1: {Hits: makeHits(0, 40), TotalHits: 45},
		2: {Hits: makeHits(40, 5), TotalHits: 45},
	}}
	var out, errOut bytes.Buffer

	err := Query(context.Background(), QueryOptions{
		ConfigPath: cfgPath,
		Terms:      "  cats ",
		Pages:      3,
		JSON:       true,
		Out:        &out,
		Err:        &errOut,
		Fetcher:    f,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, f.calls, "paging stops at the end of results")

	var got queryOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "cats", got.Query)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 45, got.TotalHits)
	require.Len(t, got.Cards, 45)
	assert.Equal(t, "https://cdn.example/44_1280.jpg", got.Cards[44].LargeImageURL)
	assert.Equal(t, "tag0", got.Cards[0].Tags)

	assert.Contains(t, errOut.String(), "info: "+search.MsgEndOfResults)
}

func TestQuery_SinglePageByDefault(t *testing.T) {
	cfgPath := isolate(t)
	f := &pagedFetcher{pages: map[int]pixabay.Result{1: {Hits: makeHits(0, 40), TotalHits: 500}}}
	var out bytes.Buffer

	err := Query(context.Background(), QueryOptions{
		ConfigPath: cfgPath,
		Terms:      "cats",
		Out:        &out,
		Err:        &bytes.Buffer{},
		Fetcher:    f,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, f.calls)
	assert.Contains(t, out.String(), `"cats": 40 of 500 hits (page 1)`)
}

func TestQuery_TextAgainstConfiguredServer(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("key") != "test-key" || q.Get("q") != "red fox" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total":1,"totalHits":1,"hits":[{"id":7,"tags":"fox, animal","webformatURL":"https://cdn.example/7_640.jpg","largeImageURL":"https://cdn.example/7_1280.jpg","likes":3,"views":40,"comments":1,"downloads":20}]}`))
	}))
	defer srv.Close()

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := fmt.Sprintf("api_key = \"test-key\"\nbase_url = %q\n", srv.URL+"/api/")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	var out, errOut bytes.Buffer
	err := Query(context.Background(), QueryOptions{
		ConfigPath: cfgPath,
		Terms:      "red fox",
		Out:        &out,
		Err:        &errOut,
	})
	require.NoError(t, err, errOut.String())

	text := out.String()
	assert.Contains(t, text, "fox, animal")
	assert.Contains(t, text, "https://cdn.example/7_1280.jpg")
	assert.Contains(t, text, "likes 3  views 40  comments 1  downloads 20")
}

func TestQuery_FetchFailureIsReported(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := fmt.Sprintf("api_key = \"k\"\nbase_url = %q\n", srv.URL)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	var errOut bytes.Buffer
	err := Query(context.Background(), QueryOptions{
		ConfigPath: cfgPath,
		Terms:      "cats",
		Out:        &bytes.Buffer{},
		Err:        &errOut,
	})
	require.ErrorIs(t, err, pixabay.ErrFetch)
	assert.Contains(t, errOut.String(), "error: "+search.MsgSearchFailed)
}

func TestQuery_BlankTermsRejected(t *testing.T) {
	cfgPath := isolate(t)
	f := &pagedFetcher{}
	var errOut bytes.Buffer

	err := Query(context.Background(), QueryOptions{
		ConfigPath: cfgPath,
		Terms:      "   ",
		Out:        &bytes.Buffer{},
		Err:        &errOut,
		Fetcher:    f,
	})
	require.ErrorIs(t, err, search.ErrEmptyQuery)
	assert.Empty(t, f.calls)
	assert.Contains(t, errOut.String(), search.MsgEmptyQuery)
}

func TestQuery_MissingAPIKey(t *testing.T) {
	cfgPath := isolate(t)
	err := Query(context.Background(), QueryOptions{
		ConfigPath: cfgPath,
		Terms:      "cats",
		Out:        &bytes.Buffer{},
		Err:        &bytes.Buffer{},
	})
	require.ErrorIs(t, err, pixabay.ErrMissingAPIKey)
	assert.Contains(t, err.Error(), config.APIKeyEnv)
}
