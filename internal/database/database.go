package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"csvexport/internal/logging"
)

const driverName = "postgres"

type DB struct {
	Database *sqlx.DB
}

// Session pins one connection for a run. Extract and Purge share the same
// table and date predicate.
type Session struct {
	conn        *sqlx.Conn
	table       Identifier
	selectQuery string
	deleteQuery string
}

func Connect(ctx context.Context, connector string) (*DB, error) {
	db, err := sqlx.ConnectContext(ctx, driverName, connector)
	if err != nil {
		return nil, fmt.Errorf("can't connect to postgres: %w", err)
	}
	return &DB{db}, nil
}

// Wrap adapts an already opened *sql.DB, e.g. a sqlmock one.
func Wrap(db *sql.DB) *DB {
	return &DB{sqlx.NewDb(db, driverName)}
}

func (db *DB) Close() error {
	return db.Database.Close()
}

// SelectQuery reads every column of the rows whose datetime column falls on the bound date.
func SelectQuery(table, column Identifier) string {
	return fmt.Sprintf("SELECT * FROM %s WHERE %s::date = $1", table.Quoted(), column.Quoted())
}

// DeleteQuery removes exactly the rows SelectQuery reads.
func DeleteQuery(table, column Identifier) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s::date = $1", table.Quoted(), column.Quoted())
}

// Session validates the table and column names and pins a connection.
func (db *DB) Session(ctx context.Context, tableName, columnName string) (*Session, error) {
	table, err := ParseIdentifier(tableName)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	column, err := ParseIdentifier(columnName)
	if err != nil {
		return nil, fmt.Errorf("date column: %w", err)
	}

	conn, err := db.Database.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't acquire connection: %w", err)
	}
	return &Session{
		conn:        conn,
		table:       table,
		selectQuery: SelectQuery(table, column),
		deleteQuery: DeleteQuery(table, column),
	}, nil
}

func (s *Session) Table() string {
	return s.table.String()
}

// Extract streams the rows for date. The caller closes the returned rows.
func (s *Session) Extract(ctx context.Context, date string) (*sqlx.Rows, error) {
	logging.PrintAndLog("%s [$1=%s]", s.selectQuery, date)
	rows, err := s.conn.QueryxContext(ctx, s.selectQuery, date)
	if err != nil {
		return nil, fmt.Errorf("extract %s for %s: %w", s.table, date, err)
	}
	return rows, nil
}

// Purge deletes the rows for date in its own committed transaction.
func (s *Session) Purge(ctx context.Context, date string) (int64, error) {
	logging.PrintAndLog("%s [$1=%s]", s.deleteQuery, date)
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("purge %s for %s: begin: %w", s.table, date, err)
	}
	res, err := tx.ExecContext(ctx, s.deleteQuery, date)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Warnf("rollback after failed purge: %s", rbErr)
		}
		return 0, fmt.Errorf("purge %s for %s: %w", s.table, date, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("purge %s for %s: rows affected: %w", s.table, date, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("purge %s for %s: commit: %w", s.table, date, err)
	}
	return affected, nil
}

func (s *Session) Close() error {
	return s.conn.Close()
}
