package core

import "github.com/agenthands/orgchart/internal/core/model"

type TreeOptions struct {
	// Deduplicate keeps only the first row of each NodeId. Off by default, in which
	// case a node with several employment-type rows appears once per row.
	Deduplicate bool
}

// BuildTree turns the flat rows into Cytoscape elements in row order: a node for every
// row, followed by an edge from its parent unless the parent is missing or "Root".
func BuildTree(rows []model.HierarchyRow, opts TreeOptions) []model.TreeElement {
	if opts.Deduplicate {
		rows = firstRowPerNode(rows)
	}

	elements := make([]model.TreeElement, 0, 2*len(rows))
	for _, row := range rows {
		elements = append(elements, model.NewNodeElement(row.NodeID, row.Title))
		if row.HasParent() {
			elements = append(elements, model.NewEdgeElement(*row.ParentID, row.NodeID))
		}
	}
	return elements
}

func firstRowPerNode(rows []model.HierarchyRow) []model.HierarchyRow {
	seen := make(map[string]bool, len(rows))
	out := make([]model.HierarchyRow, 0, len(rows))
	for _, row := range rows {
		if seen[row.NodeID] {
			continue
		}
		seen[row.NodeID] = true
		out = append(out, row)
	}
	return out
}
