package server

// StyleRule is one Cytoscape stylesheet entry.
type StyleRule struct {
	Selector string         `json:"selector"`
	Style    map[string]any `json:"style"`
}

var TreeStylesheet = []StyleRule{
	{
		Selector: "node",
		Style: map[string]any{
			"content":          "data(label)",
			"text-valign":      "center",
			"color":            "black",
			"background-color": "lightblue",
		},
	},
	{
		Selector: "edge",
		Style: map[string]any{
			"width":              2,
			"line-color":         "#ccc",
			"target-arrow-color": "#ccc",
			"target-arrow-shape": "triangle",
		},
	},
}
