// Package fill creates and populates a sample tick table for local runs.
package fill

import (
	"context"
	"fmt"
	"time"

	"github.com/icrowley/fake"
	log "github.com/sirupsen/logrus"

	"csvexport/internal/database"
)

const (
	create = `CREATE TABLE IF NOT EXISTS %s (
		id serial NOT NULL PRIMARY KEY,
		code varchar(16) NOT NULL,
		company varchar(256) NOT NULL,
		price numeric(12, 2) NOT NULL,
		volume integer NOT NULL,
		%s timestamp(0) NOT NULL DEFAULT current_timestamp
	)`

	insert = `INSERT INTO %s (code, company, price, volume, %s) VALUES ($1, $2, $3, $4, $5)`
)

// CreateQuery and InsertQuery render the statements for a table and its datetime column.
func CreateQuery(table, column database.Identifier) string {
	return fmt.Sprintf(create, table.Quoted(), column.Quoted())
}

func InsertQuery(table, column database.Identifier) string {
	return fmt.Sprintf(insert, table.Quoted(), column.Quoted())
}

// Populate inserts n fake rows one second apart starting at 09:00 on date.
func Populate(ctx context.Context, db *database.DB, tableName, columnName, date string, n int) error {
	table, err := database.ParseIdentifier(tableName)
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	column, err := database.ParseIdentifier(columnName)
	if err != nil {
		return fmt.Errorf("date column: %w", err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	if _, err := db.Database.ExecContext(ctx, CreateQuery(table, column)); err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}

	tx, err := db.Database.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PreparexContext(ctx, InsertQuery(table, column))
	if err != nil {
		return fmt.Errorf("prepare insert into %s: %w", table, err)
	}
	defer stmt.Close()

	code := fake.DigitsN(4)
	company := fake.Company()
	at := day.Add(9 * time.Hour)
	for i := 0; i < n; i++ {
		price := fmt.Sprintf("%s.%s", fake.DigitsN(3), fake.DigitsN(2))
		if _, err := stmt.ExecContext(ctx, code, company, price, i+1, at); err != nil {
			return fmt.Errorf("insert row %d into %s: %w", i+1, table, err)
		}
		at = at.Add(time.Second)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Infof("inserted %d rows into %s for %s", n, table, date)
	return nil
}
