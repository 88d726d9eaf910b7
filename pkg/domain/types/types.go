package types

// Version is the application version, overridden at build time via ldflags.
var Version = "0.1.0"

// Defaults for the SpatialLM-Testset sample download workflow.
const (
	// DefaultRepoID is the HuggingFace dataset repository the samples come from.
	DefaultRepoID = "manycore-research/SpatialLM-Testset"

	// DefaultRevision is the dataset revision to list and download from.
	DefaultRevision = "main"

	// DefaultExtension selects point-cloud files from the repository listing.
	DefaultExtension = ".ply"

	// DefaultCount is the number of sample files fetched when --count is not given.
	DefaultCount = 5

	// DefaultBaseURL is the HuggingFace Hub endpoint.
	DefaultBaseURL = "https://huggingface.co"
)

// ReadmeFileName is the summary document written next to the downloaded samples.
const ReadmeFileName = "README.md"
