package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/unclebandit/campaign-admin/internal/export"
)

func runSeeder(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func TestSeederCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(dir, "seed.sqlite"))
	t.Setenv("APP_ENV", "production")

	assert.Equal(t, "seeded 3 campaigns, 4 ad groups, 6 ads\n", runSeeder(t, "seed"))
	assert.Equal(t, "seeded 0 campaigns, 0 ad groups, 0 ads\n", runSeeder(t, "seed"))

	programs := filepath.Join(dir, "programs.csv")
	line := "MBA" + strings.Repeat(";", 19)
	require.NoError(t, os.WriteFile(programs, []byte("header\n"+line+"\n"), 0o644))
	assert.Equal(t, "imported 1 programs, skipped 0 lines\n", runSeeder(t, "import-programs", "--file", programs))
	assert.Contains(t, runSeeder(t, "import-programs", "--file", programs), "already has data")

	csvPath := filepath.Join(dir, "out", "vista.csv")
	runSeeder(t, "export", "--out", csvPath)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), export.BOM))
	assert.Len(t, strings.Split(string(data), "\n"), 7)

	xlsxPath := filepath.Join(dir, "vista.xlsx")
	runSeeder(t, "export", "--out", xlsxPath)
	xl, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer func() { _ = xl.Close() }()
	rows, err := xl.GetRows(export.HierarchySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 7)
}

func TestImportMissingFile(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "seed.sqlite"))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"import-programs", "--file", "/nonexistent/programs.csv"})
	assert.Error(t, cmd.Execute())
}
