package model

// Dataset identifies the remote dataset repository samples are pulled from.
type Dataset struct {
	RepoID    string
	Revision  string
	Extension string
}

// CatalogEntry is one downloadable file exposed by the dataset repository.
type CatalogEntry struct {
	Path string // path within the repository, may be nested under subdirectories
	Size int64  // size in bytes reported by the listing, 0 when unknown
	OID  string // blob object ID reported by the listing
}

// FetchedFile records a file that was successfully materialized locally.
type FetchedFile struct {
	Name string // base name inside the output directory
	Path string // absolute local path
	Size int64  // observed size on disk in bytes
}

// FetchFailure records a single file that could not be fetched.
type FetchFailure struct {
	Path string
	Err  error
}

// RunReport aggregates the outcome of one fetch run.
type RunReport struct {
	Requested int
	Fetched   []FetchedFile
	Failures  []FetchFailure
}

// Succeeded reports whether at least one file was fetched.
func (r *RunReport) Succeeded() bool {
	return len(r.Fetched) > 0
}
