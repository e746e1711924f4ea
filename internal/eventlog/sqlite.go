package eventlog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/text/unicode/norm"
)

// DefaultEventQuery reads an events table in deterministic order. Rows
// must carry a case identifier and an activity label; the ORDER BY
// fixes the occurrence order so repeated loads yield identical logs.
const DefaultEventQuery = `SELECT case_id, activity FROM events ORDER BY seq ASC, case_id ASC`

// LoadSQLite reads an event table from a SQLite database into a log.
//
// query must return (case_id, activity) rows in occurrence order; pass
// an empty string for DefaultEventQuery. Rows are grouped into traces
// by case id, traces ordered by first appearance. The database is
// opened read-only; this is an ingestion path, not a persistence layer.
func LoadSQLite(ctx context.Context, path, query string) (*Log, error) {
	if query == "" {
		query = DefaultEventQuery
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("eventlog: open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("eventlog: connect to database: %w", err)
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("eventlog: query events: %w", err)
	}
	defer rows.Close()

	traceIdx := make(map[string]int)
	var traces []Trace

	for rows.Next() {
		var caseID, activity string
		if err := rows.Scan(&caseID, &activity); err != nil {
			return nil, fmt.Errorf("eventlog: scan event row: %w", err)
		}

		idx, ok := traceIdx[caseID]
		if !ok {
			idx = len(traces)
			traceIdx[caseID] = idx
			traces = append(traces, nil)
		}
		traces[idx] = append(traces[idx], norm.NFC.String(activity))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("eventlog: read event rows: %w", err)
	}

	if len(traces) == 0 {
		return nil, ErrNoTraces
	}
	return New(traces), nil
}
