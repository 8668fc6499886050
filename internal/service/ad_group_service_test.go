package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/campaign-admin/internal/errors"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/service"
)

type hierarchyServices struct {
	campaigns *service.CampaignService
	groups    *service.AdGroupService
	ads       *service.AdService
	programs  *service.ProgramService
	queue     *recordingQueue
}

func newHierarchyServices() hierarchyServices {
	campaigns := NewMockCampaignRepo()
	groups := NewMockAdGroupRepo()
	ads := NewMockAdRepo()
	q := &recordingQueue{}
	events := &service.Publisher{Queue: q, Topic: "t", Log: zap.NewNop()}
	v := service.NewValidator()
	return hierarchyServices{
		campaigns: service.NewCampaignService(campaigns, nil, v, events),
		groups:    service.NewAdGroupService(groups, campaigns, v, events),
		ads:       service.NewAdService(ads, groups, v, events),
		programs:  service.NewProgramService(NewMockProgramRepo(), v, events),
		queue:     q,
	}
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	ve, ok := appErrors.AsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, field, ve.Fields[0].Field)
}

func TestCreateAdGroupRequiresCampaign(t *testing.T) {
	s := newHierarchyServices()
	ctx := context.Background()

	_, err := s.groups.Create(ctx, model.AdGroupInput{})
	requireFieldError(t, err, "campaign_id")

	_, err = s.groups.Create(ctx, model.AdGroupInput{CampaignID: 42})
	requireFieldError(t, err, "campaign_id")
	assert.Empty(t, s.queue.actions())
}

func TestAdGroupLifecycle(t *testing.T) {
	s := newHierarchyServices()
	ctx := context.Background()

	c, err := s.campaigns.Create(ctx, validCampaign())
	require.NoError(t, err)

	g, err := s.groups.Create(ctx, model.AdGroupInput{
		CampaignID:  c.ID,
		NumeroGrupo: model.IntPtr(1),
		NombreGrupo: model.StrPtr("Ejecutivos"),
	})
	require.NoError(t, err)
	assert.Equal(t, c.ID, g.CampaignID)

	listed, err := s.groups.ListByCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	unknown, err := s.groups.ListByCampaign(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, unknown)

	updated, err := s.groups.Update(ctx, g.ID, model.AdGroupPatch{Cohorte: model.Some("2024-Q1")})
	require.NoError(t, err)
	assert.Equal(t, "2024-Q1", model.Str(updated.Cohorte))
	assert.Equal(t, "Ejecutivos", model.Str(updated.NombreGrupo))

	_, err = s.groups.Update(ctx, g.ID, model.AdGroupPatch{CampaignID: ptr64(777)})
	requireFieldError(t, err, "campaign_id")

	require.NoError(t, s.groups.Delete(ctx, g.ID))
	assert.True(t, appErrors.IsNotFound(s.groups.Delete(ctx, g.ID)))

	assert.Equal(t, []string{
		"campaign:created",
		"ad_group:created",
		"ad_group:updated",
		"ad_group:deleted",
	}, s.queue.actions())
}

func TestAdRequiresExistingGroup(t *testing.T) {
	s := newHierarchyServices()
	ctx := context.Background()

	_, err := s.ads.Create(ctx, model.AdInput{AdGroupID: 5})
	requireFieldError(t, err, "ad_group_id")

	c, err := s.campaigns.Create(ctx, validCampaign())
	require.NoError(t, err)
	g, err := s.groups.Create(ctx, model.AdGroupInput{CampaignID: c.ID})
	require.NoError(t, err)

	a, err := s.ads.Create(ctx, model.AdInput{AdGroupID: g.ID, NombreAnuncio: model.StrPtr("MBA")})
	require.NoError(t, err)

	ads, err := s.ads.ListByAdGroup(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, a.ID, ads[0].ID)

	_, err = s.ads.Update(ctx, a.ID, model.AdPatch{AdGroupID: ptr64(0)})
	requireFieldError(t, err, "ad_group_id")

	moved, err := s.ads.Update(ctx, a.ID, model.AdPatch{TipoAnuncio: model.Some("Imagen")})
	require.NoError(t, err)
	assert.Equal(t, "Imagen", model.Str(moved.TipoAnuncio))
	assert.Equal(t, "MBA", model.Str(moved.NombreAnuncio))

	_, err = s.ads.Get(ctx, 404)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestProgramService(t *testing.T) {
	s := newHierarchyServices()
	ctx := context.Background()

	_, err := s.programs.Create(ctx, model.ProgramInput{})
	requireFieldError(t, err, "nombre_programa")

	p, err := s.programs.Create(ctx, model.ProgramInput{
		NombrePrograma: "MBA Ejecutivo",
		Facultad:       model.StrPtr("Administración"),
	})
	require.NoError(t, err)

	p, err = s.programs.Update(ctx, p.ID, model.ProgramPatch{PP1: model.Some("Liderazgo")})
	require.NoError(t, err)
	assert.Equal(t, "Liderazgo", model.Str(p.PP1))
	assert.Equal(t, "Administración", model.Str(p.Facultad))

	_, err = s.programs.Update(ctx, p.ID, model.ProgramPatch{NombrePrograma: model.Some("")})
	requireFieldError(t, err, "nombre_programa")

	require.NoError(t, s.programs.Delete(ctx, p.ID))
	assert.True(t, appErrors.IsNotFound(s.programs.Delete(ctx, p.ID)))
}

func ptr64(n int64) *int64 { return &n }
