package cmd

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rpgo/portfolio-montecarlo/internal/storage"
	"github.com/rpgo/portfolio-montecarlo/internal/storage/memory"
	"github.com/rpgo/portfolio-montecarlo/internal/storage/postgres"
)

// openRunStore returns a Postgres-backed store when dsn is set and an
// in-memory one otherwise. The returned function releases the store.
func openRunStore(ctx context.Context, dsn string) (storage.RunStore, func(), error) {
	if dsn == "" {
		logrus.Debug("using in-memory run store")
		return memory.NewRunStore(), func() {}, nil
	}
	pool, err := postgres.NewPool(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	logrus.Info("using postgres run store")
	return postgres.NewRunStore(pool), pool.Close, nil
}
