package core

import "github.com/agenthands/orgchart/internal/core/model"

func strPtr(s string) *string { return &s }

func intPtr(n int64) *int64 { return &n }

// scenarioRows is the two-node CEO/Mgr hierarchy.
func scenarioRows() []model.HierarchyRow {
	return []model.HierarchyRow{
		{NodeID: "A", ParentID: strPtr("Root"), Title: "CEO", MaleCount: 5, FemaleCount: 3, EmploymentType: strPtr("FT")},
		{NodeID: "B", ParentID: strPtr("A"), Title: "Mgr", MaleCount: 2, FemaleCount: 1, EmploymentType: strPtr("PT")},
	}
}

// slicedRows gives node A three employment-type rows.
func slicedRows() []model.HierarchyRow {
	return []model.HierarchyRow{
		{NodeID: "A", ParentID: strPtr("Root"), Title: "CEO", Level: intPtr(1), FullPath: strPtr("Corp"), NationalIDCount: 8, MaleCount: 5, FemaleCount: 3, EmploymentType: strPtr("FT")},
		{NodeID: "A", ParentID: strPtr("Root"), Title: "CEO", Level: intPtr(1), FullPath: strPtr("Corp"), NationalIDCount: 2, MaleCount: 1, FemaleCount: 1, EmploymentType: strPtr("PT")},
		{NodeID: "A", ParentID: strPtr("Root"), Title: "CEO", Level: intPtr(1), FullPath: strPtr("Corp"), NationalIDCount: 1, MaleCount: 0, FemaleCount: 1, EmploymentType: strPtr("FT")},
		{NodeID: "B", ParentID: strPtr("A"), Title: "Mgr", Level: intPtr(2)},
		{NodeID: "C", ParentID: nil, Title: "Detached"},
	}
}
