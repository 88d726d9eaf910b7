package interfaces

import (
	"context"

	"github.com/spatiallm3d/sampleset/pkg/domain/model"
)

// FetchUseCase defines operations for the sample download workflow
type FetchUseCase interface {
	// ListCatalog returns the sorted, extension-filtered catalog of sample files
	ListCatalog(ctx context.Context) ([]model.CatalogEntry, error)

	// FetchSamples downloads up to count files from the catalog into outputDir,
	// sequentially and in catalog order. Per-file failures are collected in the
	// report and do not abort the batch.
	FetchSamples(ctx context.Context, catalog []model.CatalogEntry, count int, outputDir string) (*model.RunReport, error)

	// WriteReadme writes the summary document describing the fetched files
	WriteReadme(outputDir string, files []model.FetchedFile) error
}
