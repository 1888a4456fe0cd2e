package driver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/agenthands/orgchart/internal/core/model"
)

// MemgraphSource reads the hierarchy from a Bolt-speaking graph store (Memgraph or Neo4j).
type MemgraphSource struct {
	Driver neo4j.DriverWithContext
}

func NewMemgraphSource(ctx context.Context, uri, username, password string) (*MemgraphSource, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, &ConnectionError{Err: err}
	}

	return &MemgraphSource{Driver: driver}, nil
}

func (s *MemgraphSource) Close(ctx context.Context) error {
	return s.Driver.Close(ctx)
}

func (s *MemgraphSource) FetchRows(ctx context.Context) ([]model.HierarchyRow, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.Driver, HierarchyAggregateCypher, nil,
		neo4j.EagerResultTransformer, neo4j.ExecuteQueryWithReadersRouting())
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	rows, err := rowsFromRecords(result.Keys, result.Records)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	return rows, nil
}

func rowsFromRecords(keys []string, records []*neo4j.Record) ([]model.HierarchyRow, error) {
	if err := checkColumns(keys, false); err != nil {
		return nil, err
	}

	out := make([]model.HierarchyRow, 0, len(records))
	for i, rec := range records {
		row, err := rowFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, row)
	}
	return out, nil
}

func rowFromRecord(rec *neo4j.Record) (model.HierarchyRow, error) {
	var row model.HierarchyRow
	var err error

	str := func(key string) *string {
		v, _ := rec.Get(key)
		return asString(v)
	}
	num := func(key string) *int64 {
		if err != nil {
			return nil
		}
		v, _ := rec.Get(key)
		var n *int64
		n, err = asInt(v)
		if err != nil {
			err = fmt.Errorf("column %s: %w", key, err)
		}
		return n
	}

	if id := str("NodeId"); id != nil {
		row.NodeID = *id
	}
	if title := str("Title"); title != nil {
		row.Title = *title
	}
	row.ParentID = str("ParentId")
	row.Level1 = str("Level1")
	row.Level2 = str("Level2")
	row.Level3 = str("Level3")
	row.Level4 = str("Level4")
	row.FullPath = str("FullPath")
	row.EmploymentType = str("EMPLOYM_TYPE")
	row.Level = num("Level")
	row.NationalIDCount = deref(num("NationalIdCount"))
	row.MaleCount = deref(num("MaleCount"))
	row.FemaleCount = deref(num("FemaleCount"))

	return row, err
}

func asString(v any) *string {
	var s string
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s = t
	case int64:
		s = strconv.FormatInt(t, 10)
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		s = fmt.Sprint(t)
	}
	return &s
}

func asInt(v any) (*int64, error) {
	var n int64
	switch t := v.(type) {
	case nil:
		return nil, nil
	case int64:
		n = t
	case float64:
		n = int64(t)
	case string:
		parsed, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil, err
		}
		n = parsed
	default:
		return nil, fmt.Errorf("unexpected type %T", v)
	}
	return &n, nil
}

func deref(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}
