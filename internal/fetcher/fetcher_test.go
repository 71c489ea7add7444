package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"racewiki/internal/pages"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/bahrain/race-result", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		fmt.Fprint(w, "<table>results</table>")
	})
	mux.HandleFunc("/bahrain/starting-grid", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<table>grid</table>")
	})
	mux.HandleFunc("/bahrain/pit-stop-summary", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := newServer(t)
	f := NewHTTPFetcher(5*time.Second, "")

	body, err := f.Fetch(context.Background(), srv.URL+"/bahrain/race-result")
	require.NoError(t, err)
	assert.Equal(t, "<table>results</table>", body)
}

func TestHTTPFetcher_StatusError(t *testing.T) {
	srv := newServer(t)
	f := NewHTTPFetcher(5*time.Second, "")

	_, err := f.Fetch(context.Background(), srv.URL+"/bahrain/pit-stop-summary")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestFetchAll(t *testing.T) {
	srv := newServer(t)
	urls := pages.Locate(srv.URL+"/bahrain/race-result", pages.Results, pages.Grid)

	bodies, err := FetchAll(context.Background(), NewHTTPFetcher(5*time.Second, ""), urls)
	require.NoError(t, err)
	assert.Equal(t, map[pages.Kind]string{
		pages.Results: "<table>results</table>",
		pages.Grid:    "<table>grid</table>",
	}, bodies)
}

func TestFetchAll_NamesFailedPage(t *testing.T) {
	srv := newServer(t)
	urls := pages.Locate(srv.URL+"/bahrain/race-result", pages.Results, pages.Grid, pages.PitStops)

	bodies, err := FetchAll(context.Background(), NewHTTPFetcher(5*time.Second, ""), urls)
	assert.Nil(t, bodies)

	var pageErr *PageError
	require.ErrorAs(t, err, &pageErr)
	assert.Equal(t, pages.PitStops, pageErr.Kind)
	assert.Contains(t, err.Error(), "pit stop summary")

	var statusErr *StatusError
	assert.ErrorAs(t, err, &statusErr)
}

type fetchFunc func(ctx context.Context, url string) (string, error)

func (f fetchFunc) Fetch(ctx context.Context, url string) (string, error) { return f(ctx, url) }

func TestFetchAll_CancelsRemaining(t *testing.T) {
	boom := errors.New("connection refused")
	f := fetchFunc(func(ctx context.Context, url string) (string, error) {
		if url == "grid" {
			return "", boom
		}
		<-ctx.Done()
		return "", ctx.Err()
	})

	_, err := FetchAll(context.Background(), f, map[pages.Kind]string{
		pages.Results: "results",
		pages.Grid:    "grid",
	})
	require.ErrorIs(t, err, boom)

	var pageErr *PageError
	require.ErrorAs(t, err, &pageErr)
	assert.Equal(t, pages.Grid, pageErr.Kind)
}
