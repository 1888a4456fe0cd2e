package driver

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
	_ "modernc.org/sqlite"

	"github.com/agenthands/orgchart/internal/core/model"
)

// SQLSource runs the aggregation query over database/sql. The registered driver
// names are "sqlserver", "pgx" and "sqlite".
type SQLSource struct {
	DB *sql.DB
}

func NewSQLSource(ctx context.Context, driverName, dsn string) (*SQLSource, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &ConnectionError{Err: err}
	}

	return &SQLSource{DB: db}, nil
}

func (s *SQLSource) Close(ctx context.Context) error {
	return s.DB.Close()
}

func (s *SQLSource) FetchRows(ctx context.Context) ([]model.HierarchyRow, error) {
	rows, err := s.DB.QueryContext(ctx, HierarchyAggregateQuery)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	defer rows.Close()

	out, err := scanRows(rows)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	return out, nil
}

var intColumns = map[string]bool{
	"level":           true,
	"nationalidcount": true,
	"malecount":       true,
	"femalecount":     true,
}

func scanRows(rows *sql.Rows) ([]model.HierarchyRow, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	// Postgres folds unquoted identifiers, so columns are matched case-insensitively.
	lower := make([]string, len(cols))
	for i, c := range cols {
		lower[i] = strings.ToLower(c)
	}
	if err := checkColumns(lower, true); err != nil {
		return nil, err
	}

	var out []model.HierarchyRow
	for rows.Next() {
		strs := make(map[string]*sql.NullString, len(cols))
		ints := make(map[string]*sql.NullInt64, len(cols))
		dest := make([]any, len(cols))
		for i, name := range lower {
			switch {
			case intColumns[name]:
				ints[name] = new(sql.NullInt64)
				dest[i] = ints[name]
			default:
				strs[name] = new(sql.NullString)
				dest[i] = strs[name]
			}
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		out = append(out, model.HierarchyRow{
			NodeID:          strs["nodeid"].String,
			ParentID:        nullString(strs["parentid"]),
			Level1:          nullString(strs["level1"]),
			Level2:          nullString(strs["level2"]),
			Level3:          nullString(strs["level3"]),
			Level4:          nullString(strs["level4"]),
			FullPath:        nullString(strs["fullpath"]),
			Level:           nullInt(ints["level"]),
			Title:           strs["title"].String,
			NationalIDCount: ints["nationalidcount"].Int64,
			MaleCount:       ints["malecount"].Int64,
			FemaleCount:     ints["femalecount"].Int64,
			EmploymentType:  nullString(strs["employm_type"]),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// checkColumns fails when a required column is absent from the result set.
func checkColumns(cols []string, foldCase bool) error {
	have := make(map[string]bool, len(cols))
	for _, c := range cols {
		have[c] = true
	}
	var missing []string
	for _, req := range RequiredColumns {
		key := req
		if foldCase {
			key = strings.ToLower(req)
		}
		if !have[key] {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("result is missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

func nullString(ns *sql.NullString) *string {
	if ns == nil || !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func nullInt(ni *sql.NullInt64) *int64 {
	if ni == nil || !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}
