package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selectStockRaw = `SELECT * FROM "stock_raw" WHERE "datetime"::date = $1`
	deleteStockRaw = `DELETE FROM "stock_raw" WHERE "datetime"::date = $1`
)

func createMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return Wrap(db), mock
}

func TestSession_Extract(t *testing.T) {
	db, mock := createMockDB(t)
	mock.ExpectQuery(selectStockRaw).WithArgs("2024-01-01").WillReturnRows(
		sqlmock.NewRows([]string{"id", "code", "price"}).
			AddRow(1, "9983", "101.5").
			AddRow(2, "9983", "102.0"))

	session, err := db.Session(context.Background(), "stock_raw", "datetime")
	require.NoError(t, err)
	defer session.Close()
	assert.Equal(t, "stock_raw", session.Table())

	rows, err := session.Extract(context.Background(), "2024-01-01")
	require.NoError(t, err)
	defer rows.Close()

	var got [][]interface{}
	for rows.Next() {
		row, err := rows.SliceScan()
		require.NoError(t, err)
		got = append(got, row)
	}
	require.NoError(t, rows.Err())
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0][0])
	assert.Equal(t, "9983", got[1][1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_ExtractError(t *testing.T) {
	db, mock := createMockDB(t)
	mock.ExpectQuery(selectStockRaw).WithArgs("2024-13-01").
		WillReturnError(errors.New(`date/time field value out of range: "2024-13-01"`))

	session, err := db.Session(context.Background(), "stock_raw", "datetime")
	require.NoError(t, err)
	defer session.Close()

	_, err = session.Extract(context.Background(), "2024-13-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract stock_raw for 2024-13-01")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_Purge(t *testing.T) {
	db, mock := createMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(deleteStockRaw).WithArgs("2024-01-01").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	session, err := db.Session(context.Background(), "stock_raw", "datetime")
	require.NoError(t, err)
	defer session.Close()

	affected, err := session.Purge(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_PurgeRollsBackOnError(t *testing.T) {
	db, mock := createMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(deleteStockRaw).WithArgs("2024-01-01").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	session, err := db.Session(context.Background(), "stock_raw", "datetime")
	require.NoError(t, err)
	defer session.Close()

	_, err = session.Purge(context.Background(), "2024-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_InvalidTable(t *testing.T) {
	db, mock := createMockDB(t)

	_, err := db.Session(context.Background(), "stock_raw; DELETE FROM users", "datetime")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table:")

	_, err = db.Session(context.Background(), "stock_raw", "datetime) OR (1=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date column:")
	assert.NoError(t, mock.ExpectationsWereMet())
}
