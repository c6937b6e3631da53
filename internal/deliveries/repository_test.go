package deliveries

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestUpdateStatusDeliveredSetsTimestamp(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE deliveries SET status").
		WithArgs("delivered", sqlmock.AnyArg(), nil, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	changed, err := repo.UpdateStatus(context.Background(), 5, StatusDelivered, nil)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusRevertClearsTimestamp(t *testing.T) {
	repo, mock := newMock(t)

	notes := "driver could not reach the address"
	mock.ExpectExec("UPDATE deliveries SET status").
		WithArgs("missed", nil, notes, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	changed, err := repo.UpdateStatus(context.Background(), 5, StatusMissed, &notes)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusUnknownID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE deliveries SET status").
		WithArgs("skipped", nil, nil, int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	changed, err := repo.UpdateStatus(context.Background(), 999, StatusSkipped, nil)
	require.NoError(t, err)
	assert.False(t, changed, "no matching row should report changed=false, not an error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsNoFilter(t *testing.T) {
	repo, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"count", "delivered", "missed", "pending"}).
		AddRow(10, 4, 2, 3)
	mock.ExpectQuery("SELECT\\s+COUNT").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	stats, err := repo.Stats(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 10, Delivered: 4, Missed: 2, Pending: 3}, stats)

	// One skipped row: part of the total, absent from every named bucket.
	assert.Equal(t, stats.Total, stats.Delivered+stats.Missed+stats.Pending+1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsMonthFilter(t *testing.T) {
	repo, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"count", "delivered", "missed", "pending"}).
		AddRow(2, 0, 0, 2)
	mock.ExpectQuery("EXTRACT\\(MONTH FROM delivery_date\\)").
		WithArgs(int64(7), 2, 2024).
		WillReturnRows(rows)

	stats, err := repo.Stats(context.Background(), 7, &MonthFilter{Month: time.February, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 2, Pending: 2}, stats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsEmptySubscription(t *testing.T) {
	repo, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"count", "delivered", "missed", "pending"}).
		AddRow(0, 0, 0, 0)
	mock.ExpectQuery("SELECT\\s+COUNT").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	stats, err := repo.Stats(context.Background(), 42, nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats, "no rows means zero counts, not an error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsIdempotent(t *testing.T) {
	repo, mock := newMock(t)

	for range 2 {
		mock.ExpectQuery("SELECT\\s+COUNT").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"count", "delivered", "missed", "pending"}).
				AddRow(10, 4, 2, 3))
	}

	first, err := repo.Stats(context.Background(), 7, nil)
	require.NoError(t, err)
	second, err := repo.Stats(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second, "stats without intervening writes must not drift")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListBySubscriptionWithFilter(t *testing.T) {
	repo, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"id", "subscription_id", "delivery_date", "status", "delivered_at", "notes"}).
		AddRow(1, 7, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), "pending", nil, nil).
		AddRow(2, 7, time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC), "delivered", time.Now(), nil)

	mock.ExpectQuery("FROM deliveries WHERE subscription_id").
		WithArgs(int64(7), 2, 2024).
		WillReturnRows(rows)

	list, err := repo.ListBySubscription(context.Background(), 7, &MonthFilter{Month: time.February, Year: 2024})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-02-01", list[0].DeliveryDate.String())
	assert.Equal(t, StatusDelivered, list[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
