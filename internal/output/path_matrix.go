package output

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rpgo/portfolio-montecarlo/internal/calculation"
)

// WritePathMatrix saves every retained trial path. The layout follows the
// file extension: ".dat" for the fixed-width year-per-line layout, ".csv"
// for one row per trial.
func WritePathMatrix(path string, m *calculation.PathMatrix) error {
	if m == nil {
		return fmt.Errorf("no paths retained")
	}
	ext := strings.ToLower(filepath.Ext(path))
	var write func(io.Writer, *calculation.PathMatrix) error
	switch ext {
	case ".dat":
		write = WriteDAT
	case ".csv":
		write = WritePathCSV
	default:
		return fmt.Errorf("unsupported path matrix extension %q (use .dat or .csv)", ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create path file: %w", err)
	}
	if err := write(file, m); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

// WriteDAT writes one line per year: the year index as %2d followed by
// ",% 10.4f" for each trial.
func WriteDAT(w io.Writer, m *calculation.PathMatrix) error {
	bw := bufio.NewWriter(w)
	for year := 0; year <= m.Years(); year++ {
		fmt.Fprintf(bw, "%2d", year)
		for trial := 0; trial < m.Trials(); trial++ {
			fmt.Fprintf(bw, ",% 10.4f", m.At(trial, year))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WritePathCSV writes a header "trial,year_0,...,year_N" and one row per trial.
func WritePathCSV(w io.Writer, m *calculation.PathMatrix) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, m.Years()+2)
	header = append(header, "trial")
	for year := 0; year <= m.Years(); year++ {
		header = append(header, "year_"+intToString(year))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for trial := 0; trial < m.Trials(); trial++ {
		row[0] = intToString(trial)
		for year, v := range m.Trial(trial) {
			row[year+1] = strconv.FormatFloat(v, 'f', 6, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
