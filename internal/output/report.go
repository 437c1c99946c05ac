package output

import (
	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

// GenerateReport writes the comparison in the named format to path (or a
// timestamped file when path is empty) and returns the file written.
func GenerateReport(results *domain.ScenarioComparison, format, path string) (string, error) {
	f, err := ResolveFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, results, path)
}

// RenderReport returns the comparison in the named format.
func RenderReport(results *domain.ScenarioComparison, format string) ([]byte, error) {
	f, err := ResolveFormatter(format)
	if err != nil {
		return nil, err
	}
	return f.Format(results)
}
