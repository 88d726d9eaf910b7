package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/spatiallm3d/sampleset/pkg/cli/config"
	"github.com/spatiallm3d/sampleset/pkg/domain/model"
	"github.com/spatiallm3d/sampleset/pkg/domain/types"
	"github.com/spatiallm3d/sampleset/pkg/infra/hub"
	"github.com/spatiallm3d/sampleset/pkg/usecase"
)

func cmdFetch() *cli.Command {
	var (
		datasetCfg config.Dataset
		outputCfg  config.Output
		profile    string
	)

	flags := append(datasetCfg.Flags(), outputCfg.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "config",
		Usage:       "Path to a TOML profile with dataset and output defaults",
		Destination: &profile,
		Sources:     cli.EnvVars("SAMPLESET_CONFIG"),
	})

	return &cli.Command{
		Name:    "fetch",
		Aliases: []string{"f"},
		Usage:   "Download sample files and write a summary README",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if profile != "" {
				p, err := config.LoadProfile(profile)
				if err != nil {
					return err
				}
				p.Apply(c.IsSet, &datasetCfg, &outputCfg)
			}

			logger.Debug("resolved configuration",
				slog.Any("dataset", datasetCfg),
				slog.Any("output", outputCfg),
			)

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

			logger.Info("fetching available files",
				slog.String("repo", datasetCfg.RepoID),
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

			logger.Info("found sample files",
				slog.Int("count", len(catalog)),
				slog.String("repo", datasetCfg.RepoID),
			)

			outputDir, err := filepath.Abs(outputCfg.Dir)
			if err != nil {
				return goerr.Wrap(err, "failed to resolve output directory", goerr.V("dir", outputCfg.Dir))
			}
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", outputDir))
			}

			report, err := fetchUC.FetchSamples(ctx, catalog, outputCfg.Count, outputDir)
			if err != nil {
				return goerr.Wrap(err, "failed to fetch samples")
			}

			printReport(report)

			if !report.Succeeded() {
				return goerr.New("no files were downloaded successfully",
					goerr.V("requested", report.Requested),
				)
			}

			if err := fetchUC.WriteReadme(outputDir, report.Fetched); err != nil {
				return err
			}

			logger.Info("wrote summary document",
				slog.String("path", filepath.Join(outputDir, types.ReadmeFileName)),
			)
			return nil
		},
	}
}

func printReport(report *model.RunReport) {
	for _, f := range report.Fetched {
		fmt.Printf("  %s: %s (%.2f MB)\n",
			color.GreenString("SUCCESS"), f.Name, float64(f.Size)/(1024*1024))
	}
	for _, f := range report.Failures {
		fmt.Printf("  %s: %s: %v\n",
			color.RedString("ERROR"), f.Path, f.Err)
	}
	fmt.Printf("\nDownload complete: %d/%d files successful\n",
		len(report.Fetched), report.Requested)
}
