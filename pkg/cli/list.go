package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/spatiallm3d/sampleset/pkg/cli/config"
	"github.com/spatiallm3d/sampleset/pkg/domain/model"
	"github.com/spatiallm3d/sampleset/pkg/infra/hub"
	"github.com/spatiallm3d/sampleset/pkg/usecase"
)

func cmdList() *cli.Command {
	var (
		datasetCfg config.Dataset
		profile    string
	)

	flags := append(datasetCfg.Flags(), &cli.StringFlag{
		Name:        "config",
		Usage:       "Path to a TOML profile with dataset defaults",
		Destination: &profile,
		Sources:     cli.EnvVars("SAMPLESET_CONFIG"),
	})

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List available sample files without downloading",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if profile != "" {
				p, err := config.LoadProfile(profile)
				if err != nil {
					return err
				}
				p.Apply(c.IsSet, &datasetCfg, nil)
			}

			fetchUC := usecase.NewFetch(
				hub.New(
					hub.WithBaseURL(datasetCfg.BaseURL),
					hub.WithToken(datasetCfg.Token),
				),
				model.Dataset{
					RepoID:    datasetCfg.RepoID,
					Revision:  datasetCfg.Revision,
					Extension: datasetCfg.Extension,
				},
			)

			catalog, err := fetchUC.ListCatalog(ctx)
			if err != nil {
				logger.Error("failed to list repository files", slog.Any("error", err))
				catalog = nil
			}
			if len(catalog) == 0 {
				return goerr.New("no PLY files found in repository",
					goerr.V("repo", datasetCfg.RepoID),
				)
			}

			fmt.Printf("Available files in %s:\n", color.CyanString(datasetCfg.RepoID))
			for i, entry := range catalog {
				fmt.Printf("  %3d. %s\n", i+1, entry.Path)
			}
			return nil
		},
	}
}
