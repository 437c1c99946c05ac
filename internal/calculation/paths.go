package calculation

// PathMatrix holds every retained trial path, trial index first.
// Rows are disjoint windows of one backing array so workers can fill
// different trials concurrently without locking.
type PathMatrix struct {
	trials int
	width  int
	values []float64
}

// NewPathMatrix allocates a trials x (years+1) matrix.
func NewPathMatrix(trials, years int) *PathMatrix {
	width := years + 1
	return &PathMatrix{
		trials: trials,
		width:  width,
		values: make([]float64, trials*width),
	}
}

// Trials returns the number of rows.
func (m *PathMatrix) Trials() int { return m.trials }

// Years returns the horizon; each row holds Years()+1 values.
func (m *PathMatrix) Years() int { return m.width - 1 }

// Trial returns the path of one trial. The slice aliases the matrix.
func (m *PathMatrix) Trial(trial int) []float64 {
	start := trial * m.width
	return m.values[start : start+m.width : start+m.width]
}

// At returns the value of trial at year.
func (m *PathMatrix) At(trial, year int) float64 {
	return m.values[trial*m.width+year]
}

// Terminal returns the final-year value of trial.
func (m *PathMatrix) Terminal(trial int) float64 {
	return m.At(trial, m.width-1)
}
