package interfaces

import (
	"context"

	"github.com/spatiallm3d/sampleset/pkg/domain/model"
)

// HubClient defines the two dataset repository operations the fetcher relies on
type HubClient interface {
	// ListFiles returns all files in the dataset repository at the given revision
	ListFiles(ctx context.Context, repoID, revision string) ([]model.CatalogEntry, error)

	// DownloadFile streams the named repository file into destPath, creating
	// parent directories as needed, and returns the number of bytes written
	DownloadFile(ctx context.Context, repoID, revision, path, destPath string) (int64, error)
}
