package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/agenthands/orgchart/internal/core/model"
)

type GenderMode string

const (
	// GenderFirstRow reads the counts of the first row for the node only.
	GenderFirstRow GenderMode = "first"
	// GenderSum adds the counts of every employment-type slice of the node.
	GenderSum GenderMode = "sum"
)

type Options struct {
	Tree       TreeOptions
	GenderMode GenderMode
}

// Snapshot is the hierarchy table as loaded at startup. It is never modified.
type Snapshot struct {
	ID       string
	LoadedAt time.Time
	rows     []model.HierarchyRow
}

func NewSnapshot(rows []model.HierarchyRow) *Snapshot {
	return &Snapshot{
		ID:       uuid.NewString(),
		LoadedAt: time.Now().UTC(),
		rows:     append([]model.HierarchyRow(nil), rows...),
	}
}

func (s *Snapshot) Len() int { return len(s.rows) }

// Rows returns a copy of the loaded rows.
func (s *Snapshot) Rows() []model.HierarchyRow {
	return append([]model.HierarchyRow(nil), s.rows...)
}

// Dashboard pairs a snapshot with the tree derived from it and answers selection events.
type Dashboard struct {
	Snapshot *Snapshot
	tree     []model.TreeElement
	opts     Options
}

func NewDashboard(rows []model.HierarchyRow, opts Options) *Dashboard {
	if opts.GenderMode == "" {
		opts.GenderMode = GenderFirstRow
	}
	snap := NewSnapshot(rows)
	return &Dashboard{
		Snapshot: snap,
		tree:     BuildTree(snap.rows, opts.Tree),
		opts:     opts,
	}
}

// Tree returns a copy of the elements built at startup.
func (d *Dashboard) Tree() []model.TreeElement {
	return append([]model.TreeElement(nil), d.tree...)
}
