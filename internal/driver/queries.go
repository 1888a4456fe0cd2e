package driver

const (
	HierarchyAggregateQuery = `
		SELECT
			h.NodeId,
			h.ParentId,
			h.Level1,
			h.Level2,
			h.Level3,
			h.Level4,
			h.FullPath,
			h.Level,
			h.Title,
			COUNT(e.NATIONAL_No) AS NationalIdCount,
			SUM(CASE WHEN e.SEX_CODE = '1' THEN 1 ELSE 0 END) AS MaleCount,
			SUM(CASE WHEN e.SEX_CODE = '2' THEN 1 ELSE 0 END) AS FemaleCount,
			e.EMPLOYM_TYPE
		FROM
			HierarchyTable_Final h
		LEFT JOIN
			Employees e
		ON
			h.NodeId = e.HoldingCode
		GROUP BY
			h.NodeId, h.ParentId, h.Level1, h.Level2, h.Level3, h.Level4,
			h.FullPath, h.Level, h.Title, e.EMPLOYM_TYPE
	`

	// Same aggregation for a graph store holding (:HierarchyNode) and (:Employee) nodes.
	// Non-aggregated keys in RETURN are the grouping keys.
	HierarchyAggregateCypher = `
		MATCH (h:HierarchyNode)
		OPTIONAL MATCH (e:Employee)
		WHERE e.HoldingCode = h.NodeId
		RETURN
			h.NodeId AS NodeId,
			h.ParentId AS ParentId,
			h.Level1 AS Level1,
			h.Level2 AS Level2,
			h.Level3 AS Level3,
			h.Level4 AS Level4,
			h.FullPath AS FullPath,
			h.Level AS Level,
			h.Title AS Title,
			count(e.NATIONAL_No) AS NationalIdCount,
			sum(CASE WHEN e.SEX_CODE = '1' THEN 1 ELSE 0 END) AS MaleCount,
			sum(CASE WHEN e.SEX_CODE = '2' THEN 1 ELSE 0 END) AS FemaleCount,
			e.EMPLOYM_TYPE AS EMPLOYM_TYPE
	`
)

// RequiredColumns is the result shape every backend must return.
var RequiredColumns = []string{
	"NodeId", "ParentId",
	"Level1", "Level2", "Level3", "Level4",
	"FullPath", "Level", "Title",
	"NationalIdCount", "MaleCount", "FemaleCount",
	"EMPLOYM_TYPE",
}
