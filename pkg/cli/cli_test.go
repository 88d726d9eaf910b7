package cli_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/spatiallm3d/sampleset/pkg/cli"
)

func newFakeHub(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/datasets/org/repo/tree/main", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		entries := make([]string, 0, len(files))
		for path, content := range files {
			entries = append(entries,
				`{"type":"file","oid":"x","size":`+strconv.Itoa(len(content))+`,"path":"`+path+`"}`)
		}
		_, _ = w.Write([]byte("[" + strings.Join(entries, ",") + "]"))
	})
	mux.HandleFunc("/datasets/org/repo/resolve/main/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/datasets/org/repo/resolve/main/")
		content, ok := files[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(content))
	})
	return httptest.NewServer(mux)
}

func TestRun_Fetch(t *testing.T) {
	server := newFakeHub(t, map[string]string{
		"scene0000_00.ply":        "point cloud a",
		"scenes/scene0001_00.ply": "point cloud b",
		"scene0002_00.ply":        "point cloud c",
		"metadata.json":           "{}",
	})
	defer server.Close()

	outputDir := filepath.Join(t.TempDir(), "samples")

	err := cli.Run(context.Background(), []string{
		"sampleset", "fetch",
		"--repo", "org/repo",
		"--base-url", server.URL,
		"--output-dir", outputDir,
		"--count", "2",
	})
	gt.NoError(t, err)

	// Sorted catalog order: scene0000_00.ply, scene0002_00.ply, scenes/...
	_, err = os.Stat(filepath.Join(outputDir, "scene0000_00.ply"))
	gt.NoError(t, err)
	_, err = os.Stat(filepath.Join(outputDir, "scene0002_00.ply"))
	gt.NoError(t, err)
	_, err = os.Stat(filepath.Join(outputDir, "scene0001_00.ply"))
	gt.Error(t, err)

	content, err := os.ReadFile(filepath.Join(outputDir, "README.md"))
	gt.NoError(t, err)
	gt.String(t, string(content)).Contains("contains 2 sample PLY files")
	gt.String(t, string(content)).Contains("`scene0000_00.ply`")
	gt.String(t, string(content)).Contains("`scene0002_00.ply`")
}

func TestRun_Fetch_NestedFileRelocated(t *testing.T) {
	server := newFakeHub(t, map[string]string{
		"scenes/scene0001_00.ply": "point cloud b",
	})
	defer server.Close()

	outputDir := filepath.Join(t.TempDir(), "samples")

	err := cli.Run(context.Background(), []string{
		"sampleset", "fetch",
		"--repo", "org/repo",
		"--base-url", server.URL,
		"--output-dir", outputDir,
		"--count", "1",
	})
	gt.NoError(t, err)

	_, err = os.Stat(filepath.Join(outputDir, "scene0001_00.ply"))
	gt.NoError(t, err)
	_, err = os.Stat(filepath.Join(outputDir, "scenes"))
	gt.Error(t, err)
}

func TestRun_Fetch_EmptyCatalog(t *testing.T) {
	server := newFakeHub(t, map[string]string{
		"metadata.json": "{}",
	})
	defer server.Close()

	outputDir := filepath.Join(t.TempDir(), "samples")

	err := cli.Run(context.Background(), []string{
		"sampleset", "fetch",
		"--repo", "org/repo",
		"--base-url", server.URL,
		"--output-dir", outputDir,
	})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("no PLY files found")

	// Nothing was written
	_, err = os.Stat(outputDir)
	gt.Error(t, err)
}

func TestRun_Fetch_CountZero(t *testing.T) {
	server := newFakeHub(t, map[string]string{
		"scene0000_00.ply": "point cloud a",
	})
	defer server.Close()

	outputDir := filepath.Join(t.TempDir(), "samples")

	err := cli.Run(context.Background(), []string{
		"sampleset", "fetch",
		"--repo", "org/repo",
		"--base-url", server.URL,
		"--output-dir", outputDir,
		"--count", "0",
	})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("no files were downloaded")
}

func TestRun_List(t *testing.T) {
	server := newFakeHub(t, map[string]string{
		"scene0000_00.ply": "point cloud a",
	})
	defer server.Close()

	err := cli.Run(context.Background(), []string{
		"sampleset", "list",
		"--repo", "org/repo",
		"--base-url", server.URL,
	})
	gt.NoError(t, err)
}

func TestRun_List_EmptyCatalog(t *testing.T) {
	server := newFakeHub(t, map[string]string{})
	defer server.Close()

	err := cli.Run(context.Background(), []string{
		"sampleset", "list",
		"--repo", "org/repo",
		"--base-url", server.URL,
	})
	gt.Error(t, err)
}

func TestRun_Fetch_WithProfile(t *testing.T) {
	server := newFakeHub(t, map[string]string{
		"scene0000_00.ply": "point cloud a",
		"scene0001_00.ply": "point cloud b",
	})
	defer server.Close()

	outputDir := filepath.Join(t.TempDir(), "samples")
	profilePath := filepath.Join(t.TempDir(), "sampleset.toml")
	gt.NoError(t, os.WriteFile(profilePath, []byte(
		"repo = \"org/repo\"\ncount = 1\noutput_dir = \""+outputDir+"\"\n"), 0644))

	err := cli.Run(context.Background(), []string{
		"sampleset", "fetch",
		"--base-url", server.URL,
		"--config", profilePath,
	})
	gt.NoError(t, err)

	_, err = os.Stat(filepath.Join(outputDir, "scene0000_00.ply"))
	gt.NoError(t, err)
	_, err = os.Stat(filepath.Join(outputDir, "scene0001_00.ply"))
	gt.Error(t, err)
}
