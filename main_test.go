package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"racewiki/internal/config"
	"racewiki/internal/log"
	"racewiki/internal/sites/f1"
)

const resultsPage = `<table class="f1-table f1-table-with-data w-full"><tbody>
<tr><td>1</td><td>1</td><td>Max VerstappenVER</td><td>Red Bull Racing Honda RBPT</td><td>57</td><td>1:31:44.742</td><td>26</td></tr>
<tr><td>2</td><td>11</td><td>Sergio PerezPER</td><td>Red Bull Racing Honda RBPT</td><td>57</td><td>+22.457s</td><td>18</td></tr>
</tbody></table>`

const gridPage = `<table class="f1-table f1-table-with-data w-full"><tbody>
<tr><td>1</td><td>1</td><td>Max VerstappenVER</td><td>Red Bull Racing Honda RBPT</td><td>1:29.179</td></tr>
<tr><td>5</td><td>11</td><td>Sergio PerezPER</td><td>Red Bull Racing Honda RBPT</td><td>1:29.537</td></tr>
</tbody></table>`

func newServer(t *testing.T, gridStatus int) string {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/bahrain/race-result", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, resultsPage)
	})
	mux.HandleFunc("/bahrain/starting-grid", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(gridStatus)
		fmt.Fprint(w, gridPage)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL + "/bahrain/race-result"
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { log.Logger = zap.NewNop() })

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestRun_Wiki(t *testing.T) {
	url := newServer(t, http.StatusOK)

	out, err := execute(t, url)
	require.NoError(t, err)

	assert.Equal(t,
		"|{{RaceResults/Row|pos=1 |driver=Max Verstappen |flag=nl |team=rbr |grid=1 |gain=0 |gap=- |pits= |points=26\n"+
			"|interval=- |tyres=\n}}\n"+
			"|{{RaceResults/Row|pos=2 |driver=Sergio Perez |flag=mx |team=rbr |grid=5 |gain=+3 |gap=+22.457 |pits= |points=18\n"+
			"|interval=+22.457 |tyres=\n}}\n",
		out)
}

func TestRun_OutputFileInfersFormat(t *testing.T) {
	url := newServer(t, http.StatusOK)
	path := filepath.Join(t.TempDir(), "bahrain.csv")

	out, err := execute(t, "-o", path, url)
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "Pos,Driver,Flag,Team,Grid,Gain,Gap,Interval,Points\n"), string(b))
}

func TestRun_GridFailureWritesNothing(t *testing.T) {
	url := newServer(t, http.StatusInternalServerError)
	path := filepath.Join(t.TempDir(), "bahrain.wiki")

	_, err := execute(t, "-o", path, url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting grid")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_MissingURL(t *testing.T) {
	_, err := execute(t)
	assert.ErrorIs(t, err, f1.ErrInputMissing)
}

func TestRun_ConfigFile(t *testing.T) {
	url := newServer(t, http.StatusOK)
	cfg := filepath.Join(t.TempDir(), "racewiki.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: json\nsite: f1.race\n"), 0o644))

	out, err := execute(t, "--config", cfg, url)
	require.NoError(t, err)
	assert.Contains(t, out, `"site": "f1.race"`)
}

func TestRun_EnvOverride(t *testing.T) {
	url := newServer(t, http.StatusOK)
	t.Setenv("RACEWIKI_FORMAT", "csv")

	out, err := execute(t, url)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Pos,Driver"), out)
}

func TestRun_MissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yml"), "http://localhost/race-result")
	assert.Error(t, err)
}

func TestValidateFlags(t *testing.T) {
	reset := func() {
		config.Site, config.Format, config.Timeout = "f1.race", "wiki", 1
		config.Render, config.ShowUI = false, false
	}

	testCases := []struct {
		name    string
		mutate  func()
		wantErr string
	}{
		{"valid", func() {}, ""},
		{"unknown site", func() { config.Site = "f1.quali" }, "unknown site: f1.quali"},
		{"bad format", func() { config.Format = "xml" }, "invalid output format: xml"},
		{"zero timeout", func() { config.Timeout = 0 }, "invalid timeout"},
		{"showui without render", func() { config.ShowUI = true }, "--showui requires --render"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reset()
			tc.mutate()
			err := validateFlags()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestInferFormatFromExtension(t *testing.T) {
	testCases := map[string]string{
		"out.wiki":    "wiki",
		"out.md":      "markdown",
		"OUT.JSON":    "json",
		"out.htm":     "html",
		"out.txt":     "text",
		"out.csv":     "csv",
		"out":         "",
		"out.unknown": "",
	}
	for name, want := range testCases {
		assert.Equal(t, want, inferFormatFromExtension(name), name)
	}
}
