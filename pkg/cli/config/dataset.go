package config

import (
	"github.com/urfave/cli/v3"

	"github.com/spatiallm3d/sampleset/pkg/domain/types"
)

// Dataset holds remote dataset repository configuration
type Dataset struct {
	RepoID    string
	Revision  string
	Extension string
	BaseURL   string
	Token     string `masq:"secret"`
}

// Flags returns CLI flags for dataset configuration
func (c *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "HuggingFace dataset repository ID",
			Value:       types.DefaultRepoID,
			Destination: &c.RepoID,
			Sources:     cli.EnvVars("SAMPLESET_REPO"),
		},
		&cli.StringFlag{
			Name:        "revision",
			Usage:       "Dataset revision to download from",
			Value:       types.DefaultRevision,
			Destination: &c.Revision,
			Sources:     cli.EnvVars("SAMPLESET_REVISION"),
		},
		&cli.StringFlag{
			Name:        "ext",
			Usage:       "File extension to select from the repository",
			Value:       types.DefaultExtension,
			Destination: &c.Extension,
			Sources:     cli.EnvVars("SAMPLESET_EXT"),
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "HuggingFace Hub endpoint",
			Value:       types.DefaultBaseURL,
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("SAMPLESET_BASE_URL"),
		},
		&cli.StringFlag{
			Name:        "token",
			Usage:       "HuggingFace access token for gated or private datasets",
			Destination: &c.Token,
			Sources:     cli.EnvVars("SAMPLESET_TOKEN", "HF_TOKEN"),
		},
	}
}
