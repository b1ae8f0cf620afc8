package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tourism-impact/internal/config"
	"tourism-impact/internal/logging"
	"tourism-impact/internal/pipeline"
	"tourism-impact/internal/present"
)

// NewRootCommand builds the tourism-impact command with its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	cmd := &cobra.Command{
		Use:   "tourism-impact",
		Short: "Compare tourism receipts and GDP per capita for 2019 and 2020",
		Long: `tourism-impact reads a World Development Indicators table, merges GDP per
capita with reference tourism receipts for ten top tourism countries, prints
summary statistics and renders three comparison charts.`,
		Example:      `./tourism-impact --input WDICSV.csv --output-dir charts --xlsx charts/tourism_impact.xlsx`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, v)
		},
	}

	d := config.Default()
	flags := cmd.Flags()
	flags.String(config.KeyInput, d.Input, "Path to the WDI table (.csv or .xlsx)")
	flags.String(config.KeyOutputDir, d.OutputDir, "Directory for the rendered charts")
	flags.Int(config.KeyDPI, d.DPI, "Resolution of the rendered charts")
	flags.String(config.KeyWorkbook, d.Workbook, "Also export the merged table to this .xlsx file")
	flags.Bool(config.KeyNoDisplay, !d.Display, "Do not open charts in the system image viewer")
	flags.Bool(config.KeyNoPrompt, !d.Prompt, "Do not wait for Enter between charts")
	flags.String(config.KeyLogLevel, d.LogLevel, "Log level (debug, info, warn, error)")

	if err := v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("failed to bind flags: %v", err))
	}

	return cmd
}

func runAnalysis(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Sync()

	out := cmd.OutOrStdout()

	var viewer present.Viewer = present.NewPathViewer(out)
	if cfg.Display {
		viewer = present.NewSystemViewer(out, logger)
	}
	var prompt present.Prompt = present.NoPrompt{}
	if cfg.Prompt {
		prompt = present.NewLinePrompt(cmd.InOrStdin(), out)
	}

	return pipeline.New(cfg, logger, out, viewer, prompt).Run()
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
