package model

// ElementData is the payload of a Cytoscape element. Nodes set ID and Label,
// edges set Source and Target.
type ElementData struct {
	ID     string `json:"id,omitempty"`
	Label  string `json:"label,omitempty"`
	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`
}

type TreeElement struct {
	Data ElementData `json:"data"`
}

func NewNodeElement(id, label string) TreeElement {
	return TreeElement{Data: ElementData{ID: id, Label: label}}
}

func NewEdgeElement(source, target string) TreeElement {
	return TreeElement{Data: ElementData{Source: source, Target: target}}
}

func (e TreeElement) IsEdge() bool {
	return e.Data.Source != "" || e.Data.Target != ""
}
