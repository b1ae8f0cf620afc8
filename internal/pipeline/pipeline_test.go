package pipeline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tourism-impact/internal/charts"
	"tourism-impact/internal/config"
)

const wdiCSV = `"Country Name","Country Code","Indicator Name","Indicator Code","2019","2020",
"France","FRA","GDP per capita (current US$)","NY.GDP.PCAP.CD","40494.9","39169.9",
"Spain","ESP","GDP per capita (current US$)","NY.GDP.PCAP.CD","29581.5","",
"China","CHN","GDP per capita (current US$)","NY.GDP.PCAP.CD","10143.9","10408.7",
"China","CHN","Population, total","SP.POP.TOTL","1407745000","1411100000",
`

// recorder captures viewer and prompt calls in order.
type recorder struct {
	events  []string
	showErr error
	waitErr error
}

func (r *recorder) Show(path string) error {
	r.events = append(r.events, "show:"+filepath.Base(path))
	return r.showErr
}

func (r *recorder) Wait(message string) error {
	r.events = append(r.events, "wait:"+message)
	return r.waitErr
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "WDICSV.csv")
	require.NoError(t, os.WriteFile(input, []byte(wdiCSV), 0o644))

	cfg := config.Default()
	cfg.Input = input
	cfg.OutputDir = filepath.Join(dir, "charts")
	cfg.DPI = 20
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	cfg.Workbook = filepath.Join(cfg.OutputDir, "tourism_impact.xlsx")

	core, logs := observer.New(zapcore.WarnLevel)
	rec := &recorder{}
	var out bytes.Buffer

	err := New(cfg, zap.New(core), &out, rec, rec).Run()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"show:" + charts.ReceiptsComparisonFile,
		"wait:Press Enter to see Percentage Changes comparison...",
		"show:" + charts.PercentageChangesFile,
		"wait:Press Enter to see Tourism Contribution to GDP...",
		"show:" + charts.GDPContributionFile,
	}, rec.events)

	for _, name := range []string{
		charts.ReceiptsComparisonFile,
		charts.PercentageChangesFile,
		charts.GDPContributionFile,
		"tourism_impact.xlsx",
	} {
		assert.FileExists(t, filepath.Join(cfg.OutputDir, name))
	}

	text := out.String()
	assert.Contains(t, text, "Summary Statistics:")
	assert.Contains(t, text, "Average Tourism Change: -53.07%", "Spain has an unusable GDP row")
	assert.Contains(t, text, "Country with largest tourism decline: Thailand (-75.21%)")
	assert.Contains(t, text, "Country with smallest tourism decline: China (-22.22%)")
	assert.Contains(t, text, "Countries merged: 10 (2 with GDP data)")

	assert.Equal(t, 1, logs.FilterMessage("Missing GDP data").Len(), "only Spain has an unusable row")
	assert.Equal(t, 1, logs.FilterField(zap.String("country", "Spain")).Len())
}

func TestRunMissingInput(t *testing.T) {
	cfg := testConfig(t)
	cfg.Input = filepath.Join(t.TempDir(), "absent.csv")
	rec := &recorder{}

	err := New(cfg, nil, &bytes.Buffer{}, rec, rec).Run()
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, rec.events)
}

func TestRunViewerFailureIsNotFatal(t *testing.T) {
	cfg := testConfig(t)
	core, logs := observer.New(zapcore.WarnLevel)
	rec := &recorder{showErr: errors.New("no display")}

	err := New(cfg, zap.New(core), &bytes.Buffer{}, rec, rec).Run()
	require.NoError(t, err)
	assert.Equal(t, 3, logs.FilterMessage("Could not display chart").Len())
}

func TestRunWorkbookFailureReported(t *testing.T) {
	cfg := testConfig(t)
	cfg.Workbook = filepath.Join(t.TempDir(), "missing-dir", "out.xlsx")
	rec := &recorder{}

	err := New(cfg, nil, &bytes.Buffer{}, rec, rec).Run()
	assert.Error(t, err)
	assert.Len(t, rec.events, 5, "all charts are still rendered and shown")
}

func TestRunPromptFailureStillRendersAllCharts(t *testing.T) {
	cfg := testConfig(t)
	core, logs := observer.New(zapcore.WarnLevel)
	stdinErr := errors.New("stdin closed")
	rec := &recorder{waitErr: stdinErr}

	err := New(cfg, zap.New(core), &bytes.Buffer{}, rec, rec).Run()
	assert.ErrorIs(t, err, stdinErr)
	assert.Len(t, rec.events, 5)
	assert.Equal(t, 2, logs.FilterMessage("Prompt failed").Len())

	for _, name := range []string{
		charts.ReceiptsComparisonFile,
		charts.PercentageChangesFile,
		charts.GDPContributionFile,
	} {
		assert.FileExists(t, filepath.Join(cfg.OutputDir, name))
	}
}
