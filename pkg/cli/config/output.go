package config

import (
	"github.com/urfave/cli/v3"

	"github.com/spatiallm3d/sampleset/pkg/domain/types"
)

// Output holds local output configuration
type Output struct {
	Count int
	Dir   string
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "count",
			Usage:       "Number of sample files to download",
			Value:       types.DefaultCount,
			Destination: &c.Count,
			Sources:     cli.EnvVars("SAMPLESET_COUNT"),
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Directory to place the downloaded samples in",
			Value:       ".",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("SAMPLESET_OUTPUT_DIR"),
		},
	}
}
