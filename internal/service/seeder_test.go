package service_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/db"
	"github.com/unclebandit/campaign-admin/internal/export"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/repository"
	"github.com/unclebandit/campaign-admin/internal/service"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func newSeeder(conn *sql.DB) *service.Seeder {
	return &service.Seeder{
		CampaignRepo: &repository.CampaignRepository{DB: conn},
		AdGroupRepo:  &repository.AdGroupRepository{DB: conn},
		AdRepo:       &repository.AdRepository{DB: conn},
		Log:          zap.NewNop(),
	}
}

func TestSeedSampleData(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()

	res, err := newSeeder(conn).SeedSampleData(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.SeedResult{Campaigns: 3, AdGroups: 4, Ads: 6}, res)

	tree, err := (&repository.HierarchyRepository{DB: conn}).CompleteHierarchy(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 3)

	// newest first: the last inserted campaign leads
	assert.Equal(t, "Derecho Corporativo Premium", model.Str(tree[0].NombreCampania))
	mba := tree[2]
	assert.Equal(t, "MBA Ejecutivo 2024", model.Str(mba.NombreCampania))
	require.Len(t, mba.AdGroups, 2)
	assert.Equal(t, "Ejecutivos Senior", model.Str(mba.AdGroups[0].NombreGrupo))
	assert.Len(t, mba.AdGroups[0].Ads, 2)
	assert.Len(t, mba.AdGroups[1].Ads, 1)

	// one CSV row per ad plus the header
	assert.Len(t, export.FlattenHierarchy(tree), 7)
}

func TestSeedSkipsPopulatedDatabase(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()

	_, err := newSeeder(conn).SeedSampleData(ctx)
	require.NoError(t, err)

	res, err := newSeeder(conn).SeedSampleData(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.SeedResult{}, res)

	n, err := (&repository.CampaignRepository{DB: conn}).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func programLine(name string, extra ...string) string {
	fields := make([]string, 20)
	fields[0] = name
	copy(fields[1:], extra)
	return strings.Join(fields, ";")
}

func TestImportPrograms(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	repo := &repository.ProgramRepository{DB: conn}
	imp := &service.ProgramImporter{ProgramRepo: repo, Log: zap.NewNop()}

	input := strings.Join([]string{
		"NOMBRE;NOMENCLATURA;LINEA;...",
		programLine("MBA Ejecutivo", " MBA-EJ ", "Postgrado", "Presencial", "Administración"),
		"",
		"Corto;solo;tres",
		programLine("Derecho Empresarial", "", "Especialización") + "\r",
	}, "\n")

	res, err := imp.Import(ctx, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)

	programs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, programs, 2)

	byName := map[string]*model.Program{}
	for _, p := range programs {
		byName[model.Str(p.NombrePrograma)] = p
	}
	mba := byName["MBA Ejecutivo"]
	require.NotNil(t, mba)
	assert.Equal(t, "MBA-EJ", model.Str(mba.NomenclaturaPrograma), "fields are trimmed")
	assert.Equal(t, "Administración", model.Str(mba.Facultad))
	assert.Nil(t, mba.PP4D, "empty fields are NULL")

	derecho := byName["Derecho Empresarial"]
	require.NotNil(t, derecho)
	assert.Nil(t, derecho.NomenclaturaPrograma)
	assert.Equal(t, "Especialización", model.Str(derecho.LineaNegocio))
}

func TestImportSkipsLoadedTable(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	repo := &repository.ProgramRepository{DB: conn}
	require.NoError(t, repo.Create(ctx, &model.Program{NombrePrograma: model.StrPtr("Existente")}))

	imp := &service.ProgramImporter{ProgramRepo: repo}
	res, err := imp.Import(ctx, strings.NewReader("h\n"+programLine("Nuevo")))
	require.NoError(t, err)
	assert.True(t, res.AlreadyLoaded)
	assert.Zero(t, res.Imported)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSnapshotWorker(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	_, err := newSeeder(conn).SeedSampleData(ctx)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "exports")
	w := service.NewSnapshotWorker(&repository.HierarchyRepository{DB: conn}, dir, zap.NewNop())

	require.NoError(t, w.Handle(ctx, model.NewChangeEvent(model.EntityProgram, model.ActionCreated, 1)))
	_, err = os.Stat(w.Path())
	assert.True(t, os.IsNotExist(err), "program events leave the snapshot alone")

	require.NoError(t, w.Handle(ctx, model.NewChangeEvent(model.EntityAd, model.ActionCreated, 1)))
	data, err := os.ReadFile(w.Path())
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, export.BOM+"Campaña,Medio,"))
	assert.Len(t, strings.Split(text, "\n"), 7)
	assert.Contains(t, text, "1 - Ejecutivos Senior")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestImportFile(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	imp := &service.ProgramImporter{ProgramRepo: &repository.ProgramRepository{DB: conn}, Log: zap.NewNop()}

	_, ok, err := imp.ImportFile(ctx, filepath.Join(t.TempDir(), "missing.csv"))
	require.NoError(t, err)
	assert.False(t, ok)

	path := filepath.Join(t.TempDir(), "programs_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("header\n"+programLine("MBA")+"\n"), 0o644))

	res, ok, err := imp.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, res.Imported)
}
