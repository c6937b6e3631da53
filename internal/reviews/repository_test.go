package reviews

import (
	"context"
	"errors"
	"testing"

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

func TestCreateRecomputesVendorRatingInSameTransaction(t *testing.T) {
	repo, mock := newMock(t)

	comment := "great dal"
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(int64(1), int64(4), 5, comment).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectExec("UPDATE vendors\\s+SET rating").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.Create(context.Background(), CreateParams{
		UserID:   1,
		VendorID: 4,
		Rating:   5,
		Comment:  &comment,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackWhenRecomputeFails(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(int64(1), int64(4), 3, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectExec("UPDATE vendors\\s+SET rating").
		WithArgs(int64(4)).
		WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), CreateParams{
		UserID:   1,
		VendorID: 4,
		Rating:   3,
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSequenceKeepsRecomputePerInsert(t *testing.T) {
	// Reviews [4, 5, 3] for the same vendor: each insert triggers its own
	// recompute, the last of which leaves mean 4.0 and count 3 in the
	// vendor row (AVG/COUNT are evaluated by the store).
	repo, mock := newMock(t)

	for i, rating := range []int{4, 5, 3} {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO reviews").
			WithArgs(int64(1), int64(4), rating, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(i + 1)))
		mock.ExpectExec("UPDATE vendors\\s+SET rating").
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
	}

	for _, rating := range []int{4, 5, 3} {
		_, err := repo.Create(context.Background(), CreateParams{
			UserID:   1,
			VendorID: 4,
			Rating:   rating,
		})
		require.NoError(t, err)
	}

	require.NoError(t, mock.ExpectationsWereMet())
}
