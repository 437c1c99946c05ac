package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

// RunStore provides access to simulation_runs storage.
type RunStore interface {
	// Insert adds a new run. Returns ErrDuplicateKey if the id exists.
	Insert(ctx context.Context, r *domain.RunRecord) error

	// GetByID retrieves a run by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, id string) (*domain.RunRecord, error)

	// List returns the most recent runs first, at most limit of them.
	// A limit <= 0 returns every run.
	List(ctx context.Context, limit int) ([]*domain.RunRecord, error)
}

// NewRunRecord assigns a fresh id to a finished run.
func NewRunRecord(name string, params domain.SimulationParameters, result domain.SimulationResult, createdAt time.Time) *domain.RunRecord {
	return &domain.RunRecord{
		ID:         uuid.NewString(),
		Name:       name,
		Parameters: params,
		Result:     result,
		// Postgres keeps microseconds; truncating here keeps both stores identical.
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}
}
