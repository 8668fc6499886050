package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/db"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/queue"
	"github.com/unclebandit/campaign-admin/internal/repository"
	"github.com/unclebandit/campaign-admin/internal/service"
)

func TestWorker(t *testing.T) {
	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "worker.sqlite"))
	require.NoError(t, err)
	defer conn.Close()

	ctx := context.Background()
	dir := t.TempDir()
	w := service.NewSnapshotWorker(&repository.HierarchyRepository{DB: conn}, dir, zap.NewNop())

	q := queue.NewInMemoryQueue(zap.NewNop())
	q.Backoff = time.Millisecond
	require.NoError(t, consume(ctx, q, "hierarchy_changes", w, zap.NewNop()))

	// the initial snapshot holds only the header
	data, err := os.ReadFile(w.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\n")

	campaigns := &repository.CampaignRepository{DB: conn}
	groups := &repository.AdGroupRepository{DB: conn}
	ads := &repository.AdRepository{DB: conn}

	c := &model.Campaign{NombreCampania: model.StrPtr("Derecho Corporativo"), Medio: model.StrPtr("LinkedIn Ads")}
	require.NoError(t, campaigns.Create(ctx, c))
	g := &model.AdGroup{CampaignID: c.ID, NumeroGrupo: model.IntPtr(1), NombreGrupo: model.StrPtr("Abogados")}
	require.NoError(t, groups.Create(ctx, g))
	a := &model.Ad{AdGroupID: g.ID, NombreAnuncio: model.StrPtr("Especialización")}
	require.NoError(t, ads.Create(ctx, a))

	require.NoError(t, q.Publish("hierarchy_changes", model.NewChangeEvent(model.EntityAd, model.ActionCreated, a.ID)))
	require.NoError(t, q.Close())

	data, err = os.ReadFile(w.Path())
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "Derecho Corporativo,LinkedIn Ads,"))
	assert.Contains(t, lines[1], "1 - Abogados")
}
