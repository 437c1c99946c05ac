package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
	"github.com/rpgo/portfolio-montecarlo/internal/storage"
)

// RunStore implements storage.RunStore using PostgreSQL.
type RunStore struct {
	pool *Pool
}

// NewRunStore creates a new RunStore.
func NewRunStore(pool *Pool) *RunStore {
	return &RunStore{pool: pool}
}

// Compile-time interface check.
var _ storage.RunStore = (*RunStore)(nil)

const runColumns = `
	id, name, years, trials, mean_return, volatility, inflation_rate, percentile,
	worst_case, mean, best_case, median, std_dev, min_value, max_value,
	elapsed_time_ms, seed, created_at
`

// Insert adds a new run. Returns ErrDuplicateKey if the id exists.
func (s *RunStore) Insert(ctx context.Context, r *domain.RunRecord) error {
	if r == nil || r.ID == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO simulation_runs (` + runColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	p, res := r.Parameters, r.Result
	_, err := s.pool.Exec(ctx, query,
		r.ID,
		r.Name,
		p.Years,
		p.Trials,
		p.MeanReturn,
		p.Volatility,
		p.InflationRate,
		p.Percentile,
		res.WorstCase,
		res.Mean,
		res.BestCase,
		res.Median,
		res.StdDev,
		res.Min,
		res.Max,
		res.ElapsedTimeMs,
		int64(res.Seed),
		r.CreatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert simulation run: %w", err)
	}
	return nil
}

// GetByID retrieves a run by its ID. Returns ErrNotFound if not exists.
func (s *RunStore) GetByID(ctx context.Context, id string) (*domain.RunRecord, error) {
	query := `SELECT ` + runColumns + ` FROM simulation_runs WHERE id = $1`

	r, err := scanRun(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get simulation run by id: %w", err)
	}
	return r, nil
}

// List returns the most recent runs first, at most limit of them.
func (s *RunStore) List(ctx context.Context, limit int) ([]*domain.RunRecord, error) {
	query := `
		SELECT ` + runColumns + `
		FROM simulation_runs
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	// LIMIT NULL means no limit.
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	rows, err := s.pool.Query(ctx, query, limitArg)
	if err != nil {
		return nil, fmt.Errorf("list simulation runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan simulation run row: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate simulation run rows: %w", err)
	}
	return runs, nil
}

// scanRun scans a single row into a RunRecord.
func scanRun(row pgx.Row) (*domain.RunRecord, error) {
	var r domain.RunRecord
	var seed int64

	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Parameters.Years,
		&r.Parameters.Trials,
		&r.Parameters.MeanReturn,
		&r.Parameters.Volatility,
		&r.Parameters.InflationRate,
		&r.Parameters.Percentile,
		&r.Result.WorstCase,
		&r.Result.Mean,
		&r.Result.BestCase,
		&r.Result.Median,
		&r.Result.StdDev,
		&r.Result.Min,
		&r.Result.Max,
		&r.Result.ElapsedTimeMs,
		&seed,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.Result.Seed = uint64(seed)
	r.CreatedAt = r.CreatedAt.UTC()
	return &r, nil
}
