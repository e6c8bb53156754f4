package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/image-copier/internal/convert"
	"github.com/pdiddy/image-copier/internal/report"
	"github.com/pdiddy/image-copier/pkg/types"
)

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args[0])
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	fsys := afero.NewOsFs()
	p := convert.NewProcessor(fsys, cfg, slog.Default())

	rep, runErr := p.ProcessAll(cmd.Context())
	report.PrintSummary(cmd.OutOrStdout(), rep)

	if cfg.ReportPath != "" {
		if err := report.WriteYAML(fsys, cfg.ReportPath, rep); err != nil {
			slog.Error("writing report", "path", cfg.ReportPath, "err", err)
			if runErr == nil {
				return err
			}
		}
	}
	if rep.HasFailures() {
		slog.Error("run stopped", "failed", rep.Failed, "processed", rep.Total())
	}
	return runErr
}

// loadConfig decodes flags, environment and config file into a run
// configuration. The direction always comes from the positional argument.
func loadConfig(arg string) (types.RewriteConfig, error) {
	var cfg types.RewriteConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Layout = cfg.Layout.WithDefaults()
	cfg.Direction = types.ParseDirection(arg)
	return cfg, nil
}
