package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const BriefingRunsSchema = `
	CREATE TABLE IF NOT EXISTS briefing_runs (
		id VARCHAR NOT NULL PRIMARY KEY,
		unit VARCHAR NOT NULL,
		slot TIMESTAMP NOT NULL,
		status VARCHAR NOT NULL,
		reason VARCHAR NULL,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NOT NULL
	);
`

const BriefingRunsIndex = `
	CREATE INDEX IF NOT EXISTS briefing_runs_unit_slot ON briefing_runs (unit, slot);
`

var bootQueries = []string{
	BriefingRunsSchema,
	BriefingRunsIndex,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
