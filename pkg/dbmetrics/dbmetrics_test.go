package dbmetrics

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/wedding-composer/pkg/metrics"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM composers"))
	assert.Equal(t, "update", operation("  UPDATE composers SET x = $1"))
	assert.Equal(t, "unknown", operation(""))
}

func TestGetExecutor(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil)
	ctx := context.Background()

	assert.Same(t, wrapped, GetExecutor(ctx, wrapped))
	assert.False(t, IsInTransaction(ctx))

	tx := &Tx{}
	txCtx := WithTx(ctx, tx)
	assert.Same(t, tx, GetExecutor(txCtx, wrapped))
	assert.True(t, IsInTransaction(txCtx))
}

func TestDB_ObservesErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")
	wrapped := Wrap(db, m)

	mock.ExpectExec("DELETE FROM composers").WillReturnError(errors.New("boom"))

	_, err = wrapped.ExecContext(context.Background(), "DELETE FROM composers")
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("delete")))
	require.NoError(t, mock.ExpectationsWereMet())
}
