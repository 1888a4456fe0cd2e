package core

import (
	"strconv"

	"github.com/agenthands/orgchart/internal/core/model"
)

const (
	SelectPrompt            = "Select a node to see details"
	NoGenderDataMessage     = "No Gender Data Available"
	NoEmploymentDataMessage = "No Employment Type Data Available"
	GenderChartTitle        = "Gender Distribution"
	EmploymentChartTitle    = "Employment Type Distribution"
	chartHole               = 0.4
	nullValue               = "None"
)

// SelectNode builds the detail panel and both charts for the selected node.
// It never fails: missing data turns into placeholders.
func (d *Dashboard) SelectNode(sel model.Selection) model.NodeView {
	if sel.ID == nil {
		return model.NodeView{Detail: model.DetailView{Placeholder: SelectPrompt}}
	}

	filtered := d.rowsFor(*sel.ID)
	return model.NodeView{
		Detail:     detailView(*sel.ID, sel.Label, filtered),
		Gender:     genderPanel(filtered, d.opts.GenderMode),
		Employment: employmentPanel(filtered),
	}
}

func (d *Dashboard) rowsFor(nodeID string) []model.HierarchyRow {
	var out []model.HierarchyRow
	for _, row := range d.Snapshot.rows {
		if row.NodeID == nodeID {
			out = append(out, row)
		}
	}
	return out
}

func genderPanel(rows []model.HierarchyRow, mode GenderMode) *model.Panel {
	if len(rows) == 0 {
		return &model.Panel{Placeholder: NoGenderDataMessage}
	}

	male, female := rows[0].MaleCount, rows[0].FemaleCount
	if mode == GenderSum {
		male, female = 0, 0
		for _, row := range rows {
			male += row.MaleCount
			female += row.FemaleCount
		}
	}

	return &model.Panel{Chart: &model.Chart{
		Title: GenderChartTitle,
		Hole:  chartHole,
		Slices: []model.Slice{
			{Label: "Male", Value: male},
			{Label: "Female", Value: female},
		},
	}}
}

// employmentPanel counts rows per employment type, in first-appearance order.
// Rows without a type are left out.
func employmentPanel(rows []model.HierarchyRow) *model.Panel {
	var slices []model.Slice
	index := make(map[string]int)
	for _, row := range rows {
		if row.EmploymentType == nil {
			continue
		}
		t := *row.EmploymentType
		i, ok := index[t]
		if !ok {
			i = len(slices)
			index[t] = i
			slices = append(slices, model.Slice{Label: t})
		}
		slices[i].Value++
	}

	if len(slices) == 0 {
		return &model.Panel{Placeholder: NoEmploymentDataMessage}
	}
	return &model.Panel{Chart: &model.Chart{
		Title:  EmploymentChartTitle,
		Hole:   chartHole,
		Slices: slices,
	}}
}

func detailView(nodeID, label string, rows []model.HierarchyRow) model.DetailView {
	if len(rows) == 0 {
		return model.DetailView{Placeholder: "No details available for " + nodeID}
	}

	row := rows[0]
	if label == "" {
		label = row.Title
	}
	return model.DetailView{
		Heading: "Node Details for " + label,
		Fields:  rowFields(row),
	}
}

// rowFields lists every column of the row under its database column name.
func rowFields(r model.HierarchyRow) []model.Field {
	return []model.Field{
		{Key: "NodeId", Value: r.NodeID},
		{Key: "ParentId", Value: optString(r.ParentID)},
		{Key: "Level1", Value: optString(r.Level1)},
		{Key: "Level2", Value: optString(r.Level2)},
		{Key: "Level3", Value: optString(r.Level3)},
		{Key: "Level4", Value: optString(r.Level4)},
		{Key: "FullPath", Value: optString(r.FullPath)},
		{Key: "Level", Value: optInt(r.Level)},
		{Key: "Title", Value: r.Title},
		{Key: "NationalIdCount", Value: strconv.FormatInt(r.NationalIDCount, 10)},
		{Key: "MaleCount", Value: strconv.FormatInt(r.MaleCount, 10)},
		{Key: "FemaleCount", Value: strconv.FormatInt(r.FemaleCount, 10)},
		{Key: "EMPLOYM_TYPE", Value: optString(r.EmploymentType)},
	}
}

func optString(s *string) string {
	if s == nil {
		return nullValue
	}
	return *s
}

func optInt(n *int64) string {
	if n == nil {
		return nullValue
	}
	return strconv.FormatInt(*n, 10)
}
