package usecase

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/spatiallm3d/sampleset/pkg/domain/interfaces"
	"github.com/spatiallm3d/sampleset/pkg/domain/model"
)

type fetchUseCase struct {
	hub     interfaces.HubClient
	dataset model.Dataset
}

// NewFetch creates a new instance of FetchUseCase
func NewFetch(hub interfaces.HubClient, dataset model.Dataset) interfaces.FetchUseCase {
	return &fetchUseCase{
		hub:     hub,
		dataset: dataset,
	}
}

// ListCatalog returns the repository files matching the configured extension,
// sorted lexicographically for deterministic ordering across runs
func (uc *fetchUseCase) ListCatalog(ctx context.Context) ([]model.CatalogEntry, error) {
	entries, err := uc.hub.ListFiles(ctx, uc.dataset.RepoID, uc.dataset.Revision)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repository files",
			goerr.V("repo", uc.dataset.RepoID),
			goerr.V("revision", uc.dataset.Revision),
		)
	}

	var catalog []model.CatalogEntry
	for _, e := range entries {
		if strings.HasSuffix(e.Path, uc.dataset.Extension) {
			catalog = append(catalog, e)
		}
	}

	sort.Slice(catalog, func(i, j int) bool {
		return catalog[i].Path < catalog[j].Path
	})

	return catalog, nil
}

// FetchSamples downloads up to count catalog entries into outputDir, one at a
// time in catalog order. A failing file is recorded and the batch continues.
func (uc *fetchUseCase) FetchSamples(ctx context.Context, catalog []model.CatalogEntry, count int, outputDir string) (*model.RunReport, error) {
	logger := ctxlog.From(ctx)

	if count > len(catalog) {
		count = len(catalog)
	}
	if count < 0 {
		count = 0
	}

	report := &model.RunReport{Requested: count}

	for _, entry := range catalog[:count] {
		logger.Info("downloading sample", "path", entry.Path)

		fetched, err := uc.fetchOne(ctx, entry, outputDir)
		if err != nil {
			logger.Error("failed to download sample",
				"path", entry.Path,
				"error", err,
			)
			report.Failures = append(report.Failures, model.FetchFailure{
				Path: entry.Path,
				Err:  err,
			})
			continue
		}

		logger.Info("downloaded sample",
			"name", fetched.Name,
			"size_bytes", fetched.Size,
		)
		report.Fetched = append(report.Fetched, *fetched)
	}

	return report, nil
}

// fetchOne retrieves a single catalog entry and ensures the resulting file
// sits directly inside outputDir
func (uc *fetchUseCase) fetchOne(ctx context.Context, entry model.CatalogEntry, outputDir string) (*model.FetchedFile, error) {
	destPath := filepath.Join(outputDir, filepath.FromSlash(entry.Path))

	written, err := uc.hub.DownloadFile(ctx, uc.dataset.RepoID, uc.dataset.Revision, entry.Path, destPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download file", goerr.V("path", entry.Path))
	}

	if entry.Size > 0 && written != entry.Size {
		_ = os.Remove(destPath)
		return nil, goerr.New("downloaded size does not match listing",
			goerr.V("path", entry.Path),
			goerr.V("want", entry.Size),
			goerr.V("got", written),
		)
	}

	// Move the file to the root of outputDir if the repository nests it
	name := path.Base(entry.Path)
	targetPath := filepath.Join(outputDir, name)
	if destPath != targetPath {
		if err := os.Rename(destPath, targetPath); err != nil {
			return nil, goerr.Wrap(err, "failed to relocate downloaded file",
				goerr.V("from", destPath),
				goerr.V("to", targetPath),
			)
		}
		// Best-effort cleanup of the emptied intermediate directory
		_ = os.Remove(filepath.Dir(destPath))
	}

	st, err := os.Stat(targetPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to stat downloaded file", goerr.V("path", targetPath))
	}

	return &model.FetchedFile{
		Name: name,
		Path: targetPath,
		Size: st.Size(),
	}, nil
}
