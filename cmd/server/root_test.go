package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/orgchart/internal/core/model"
)

func TestTreeCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "hr.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	for _, stmt := range []string{
		`CREATE TABLE HierarchyTable_Final (NodeId TEXT, ParentId TEXT, Level1 TEXT, Level2 TEXT, Level3 TEXT, Level4 TEXT, FullPath TEXT, Level INTEGER, Title TEXT)`,
		`CREATE TABLE Employees (NATIONAL_No TEXT, SEX_CODE TEXT, EMPLOYM_TYPE TEXT, HoldingCode TEXT)`,
		`INSERT INTO HierarchyTable_Final (NodeId, ParentId, Title, Level) VALUES ('A', 'Root', 'CEO', 1), ('B', 'A', 'Mgr', 2)`,
		`INSERT INTO Employees VALUES ('n1', '1', 'FT', 'A'), ('n2', '2', 'PT', 'B')`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", dbPath)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("PORT", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"tree", "--config", filepath.Join(t.TempDir(), "none.toml")})
	require.NoError(t, rootCmd.Execute())

	var elements []model.TreeElement
	require.NoError(t, json.Unmarshal(out.Bytes(), &elements))
	assert.ElementsMatch(t, []model.TreeElement{
		model.NewNodeElement("A", "CEO"),
		model.NewNodeElement("B", "Mgr"),
		model.NewEdgeElement("A", "B"),
	}, elements)
}

func TestTreeCommand_UnreachableDatabase(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "missing", "hr.db"))
	t.Setenv("LOG_LEVEL", "error")

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"tree", "--config", filepath.Join(t.TempDir(), "none.toml")})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "cannot reach sqlite database")
}
