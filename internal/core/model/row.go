package model

// RootParentID marks a top-level node in the ParentId column.
const RootParentID = "Root"

// HierarchyRow is one (node, employment type) slice returned by the aggregation query.
// Nullable columns are pointers.
type HierarchyRow struct {
	NodeID          string  `json:"NodeId"`
	ParentID        *string `json:"ParentId"`
	Level1          *string `json:"Level1"`
	Level2          *string `json:"Level2"`
	Level3          *string `json:"Level3"`
	Level4          *string `json:"Level4"`
	FullPath        *string `json:"FullPath"`
	Level           *int64  `json:"Level"`
	Title           string  `json:"Title"`
	NationalIDCount int64   `json:"NationalIdCount"`
	MaleCount       int64   `json:"MaleCount"`
	FemaleCount     int64   `json:"FemaleCount"`
	EmploymentType  *string `json:"EMPLOYM_TYPE"`
}

// HasParent reports whether the row contributes a parent->child edge.
func (r HierarchyRow) HasParent() bool {
	return r.ParentID != nil && *r.ParentID != "" && *r.ParentID != RootParentID
}
