package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
	"github.com/rpgo/portfolio-montecarlo/internal/output"
)

func sampleComparison() *domain.ScenarioComparison {
	return &domain.ScenarioComparison{
		Outcomes: []domain.ScenarioOutcome{
			{
				Name:       "baseline",
				Parameters: domain.SimulationParameters{Years: 1, Trials: 1, Percentile: 0.1},
				Result:     domain.SimulationResult{WorstCase: 1, Mean: 1, BestCase: 1},
			},
		},
	}
}

func TestGenerateReport_JSON_CSV(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"json", "csv", "markdown", "html"} {
		path := filepath.Join(dir, "report."+format)
		written, err := output.GenerateReport(sampleComparison(), format, path)
		if err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if _, err := os.Stat(written); err != nil {
			t.Fatalf("GenerateReport %s did not write %s: %v", format, written, err)
		}
	}
}

func TestGenerateReport_TimestampedName(t *testing.T) {
	t.Chdir(t.TempDir())

	written, err := output.GenerateReport(sampleComparison(), "json", "")
	if err != nil {
		t.Fatalf("GenerateReport error: %v", err)
	}
	if !strings.HasPrefix(written, "montecarlo_report_") || !strings.HasSuffix(written, ".json") {
		t.Fatalf("unexpected generated name %q", written)
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := output.GenerateReport(&domain.ScenarioComparison{}, "definitely-not-a-format", "")
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "unsupported report format") || !strings.Contains(msg, "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}
}

func TestRenderReport(t *testing.T) {
	out, err := output.RenderReport(sampleComparison(), "console")
	if err != nil {
		t.Fatalf("RenderReport error: %v", err)
	}
	if !strings.Contains(string(out), "BASELINE(0ms):") {
		t.Fatalf("unexpected console output:\n%s", out)
	}
	if _, err := output.RenderReport(sampleComparison(), "xml"); !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
