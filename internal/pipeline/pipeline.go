package pipeline

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"tourism-impact/internal/analysis"
	"tourism-impact/internal/charts"
	"tourism-impact/internal/config"
	"tourism-impact/internal/dataset"
	"tourism-impact/internal/present"
	"tourism-impact/internal/report"
	"tourism-impact/internal/workbook"
)

// Pipeline runs one analysis: load, merge, summarize, then the three charts
// in order with a prompt between them.
type Pipeline struct {
	cfg    config.Config
	logger *zap.Logger
	out    io.Writer
	viewer present.Viewer
	prompt present.Prompt
}

func New(cfg config.Config, logger *zap.Logger, out io.Writer, viewer present.Viewer, prompt present.Prompt) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{cfg: cfg, logger: logger, out: out, viewer: viewer, prompt: prompt}
}

type chartStep struct {
	prompt string
	intro  string
	render func(*analysis.Table) (string, error)
}

// Run fails early only when the dataset cannot be read. Prompt, chart and
// workbook failures are logged and the remaining outputs are still attempted; the
// first such error is returned at the end.
func (p *Pipeline) Run() error {
	fmt.Fprintln(p.out, "🌍 TOURISM IMPACT ANALYSIS 2019-2020")

	ds, err := dataset.Load(p.cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	fmt.Fprintf(p.out, "📊 Dataset loaded: %d rows from %s\n", ds.Len(), p.cfg.Input)

	table, issues := analysis.NewMerger(p.logger).Merge(ds)
	fmt.Fprintf(p.out, "🧮 Countries merged: %d (%d with GDP data)\n",
		table.Len(), len(table.Column(analysis.GDPChange)))
	p.logger.Debug("merge finished", zap.Int("countries", table.Len()), zap.Int("issues", len(issues)))

	summary := report.Summarize(table)
	if err := summary.Print(p.out); err != nil {
		return err
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	renderer := charts.NewRenderer(p.cfg.OutputDir, p.cfg.DPI)
	steps := []chartStep{
		{intro: "Displaying Tourism Receipts Comparison...", render: renderer.ReceiptsComparison},
		{prompt: "Press Enter to see Percentage Changes comparison...", render: renderer.PercentageChanges},
		{prompt: "Press Enter to see Tourism Contribution to GDP...", render: renderer.GDPContribution},
	}

	var firstErr error
	for _, step := range steps {
		if step.prompt != "" {
			if err := p.prompt.Wait(step.prompt); err != nil {
				err = fmt.Errorf("failed to read prompt: %w", err)
				p.logger.Error("Prompt failed", zap.Error(err))
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		if step.intro != "" {
			fmt.Fprintf(p.out, "\n%s\n", step.intro)
		}

		path, err := step.render(table)
		if err != nil {
			p.logger.Error("Chart rendering failed", zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := p.viewer.Show(path); err != nil {
			p.logger.Warn("Could not display chart", zap.String("path", path), zap.Error(err))
		}
	}

	if p.cfg.Workbook != "" {
		if err := workbook.Export(p.cfg.Workbook, table, summary); err != nil {
			p.logger.Error("Workbook export failed", zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		} else {
			fmt.Fprintf(p.out, "📈 Workbook saved: %s\n", p.cfg.Workbook)
		}
	}

	return firstErr
}
