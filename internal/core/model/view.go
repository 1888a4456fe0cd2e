package model

// Selection is the node-selected event sent by the tree. A nil ID means nothing is selected.
type Selection struct {
	ID    *string `json:"id,omitempty"`
	Label string  `json:"label,omitempty"`
}

type Slice struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// Chart is a proportion (donut) chart.
type Chart struct {
	Title  string  `json:"title"`
	Hole   float64 `json:"hole"`
	Slices []Slice `json:"slices"`
}

// Panel holds either a chart or a placeholder message, never both.
type Panel struct {
	Chart       *Chart `json:"chart,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type DetailView struct {
	Heading     string  `json:"heading,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
	Placeholder string  `json:"placeholder,omitempty"`
}

// NodeView is the response to a node-selected event. Nil panels are absent slots.
type NodeView struct {
	Detail     DetailView `json:"detail"`
	Gender     *Panel     `json:"gender"`
	Employment *Panel     `json:"employment"`
}
