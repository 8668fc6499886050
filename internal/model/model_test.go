package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFilterMatches(t *testing.T) {
	c := &Campaign{
		NombreCampania:  StrPtr("MBA Ejecutivo 2024"),
		Medio:           StrPtr("Google Ads"),
		ProgramaInteres: StrPtr("Ingeniería de Sistemas"),
		TipoCampana:     StrPtr("Conversión"),
	}

	tests := []struct {
		name   string
		filter SearchFilter
		want   bool
	}{
		{"no filters", SearchFilter{}, true},
		{"name substring ignores case", SearchFilter{NombreCampania: "ejecutivo"}, true},
		{"program substring with accents", SearchFilter{ProgramaInteres: "INGENIERÍA"}, true},
		{"medio is exact", SearchFilter{Medio: "Google"}, false},
		{"medio exact hit", SearchFilter{Medio: "Google Ads"}, true},
		{"null facultad never matches", SearchFilter{Facultad: "Derecho"}, false},
		{"all filters must hold", SearchFilter{Medio: "Google Ads", TipoCampana: "Reconocimiento"}, false},
		{"percent is literal", SearchFilter{NombreCampania: "%"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(c))
		})
	}
}

func TestWithCounts(t *testing.T) {
	campaigns := []*Campaign{{ID: 2}, {ID: 1}}
	got := WithCounts(campaigns, map[int64]CampaignCounts{1: {Groups: 2, Ads: 3}})

	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Zero(t, got[0].GrupoCount)
	assert.Equal(t, 2, got[1].GrupoCount)
	assert.Equal(t, 3, got[1].AnuncioCount)
}

func TestBuildHierarchy(t *testing.T) {
	campaigns := []*Campaign{{ID: 2}, {ID: 1}}
	groups := []*AdGroup{
		{ID: 10, CampaignID: 1, NumeroGrupo: IntPtr(2)},
		{ID: 11, CampaignID: 1},
		{ID: 12, CampaignID: 1, NumeroGrupo: IntPtr(1)},
		{ID: 13, CampaignID: 99},
	}
	ads := []*Ad{
		{ID: 100, AdGroupID: 12, NumeroGrupo: IntPtr(3)},
		{ID: 101, AdGroupID: 12, NumeroGrupo: IntPtr(1)},
		{ID: 102, AdGroupID: 10},
		{ID: 103, AdGroupID: 13},
	}

	tree := BuildHierarchy(campaigns, groups, ads)
	require.Len(t, tree, 2)

	assert.Equal(t, int64(2), tree[0].ID, "campaign order is kept")
	assert.NotNil(t, tree[0].AdGroups)
	assert.Empty(t, tree[0].AdGroups)

	var groupIDs []int64
	for _, g := range tree[1].AdGroups {
		groupIDs = append(groupIDs, g.ID)
	}
	assert.Equal(t, []int64{12, 10, 11}, groupIDs, "numbered first, unnumbered last")

	first := tree[1].AdGroups[0]
	require.Len(t, first.Ads, 2)
	assert.Equal(t, int64(101), first.Ads[0].ID)
	assert.Equal(t, int64(100), first.Ads[1].ID)
	assert.NotNil(t, tree[1].AdGroups[2].Ads, "groups without ads get an empty list")

	total := 0
	for _, c := range tree {
		for _, g := range c.AdGroups {
			total += len(g.Ads)
		}
	}
	assert.Equal(t, 3, total, "ads of an orphaned group are dropped")
}

func TestHierarchyJSONShape(t *testing.T) {
	tree := BuildHierarchy([]*Campaign{{ID: 1}}, []*AdGroup{{ID: 5, CampaignID: 1}}, nil)
	raw, err := json.Marshal(tree)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	groups, ok := decoded[0]["adGroups"].([]any)
	require.True(t, ok)
	group := groups[0].(map[string]any)
	assert.Equal(t, float64(1), group["campaign_id"])
	assert.Equal(t, []any{}, group["ads"])
}

func TestCampaignPatchApply(t *testing.T) {
	c := CampaignInput{
		NombreCampania:  "X",
		Medio:           "Google Ads",
		ProgramaInteres: "MBA",
		TipoCampana:     "Conversión",
		Linea:           StrPtr("Postgrado"),
	}.Campaign()

	CampaignPatch{
		Medio:    Some("LinkedIn Ads"),
		Facultad: Some("Administración"),
		Linea:    Null[string](),
	}.Apply(c)

	assert.Equal(t, "LinkedIn Ads", Str(c.Medio))
	assert.Equal(t, "Administración", Str(c.Facultad))
	assert.Nil(t, c.Linea, "null clears the column")
	assert.Equal(t, "X", Str(c.NombreCampania), "absent keys are kept")
}

func TestAdGroupPatchApply(t *testing.T) {
	g := AdGroupInput{CampaignID: 1, NumeroGrupo: IntPtr(1)}.AdGroup()
	newCampaign := int64(2)

	AdGroupPatch{CampaignID: &newCampaign, NumeroGrupo: Some(4)}.Apply(g)

	assert.Equal(t, int64(2), g.CampaignID)
	assert.Equal(t, 4, *g.NumeroGrupo)
	assert.Nil(t, g.NombreGrupo)

	AdGroupPatch{NumeroGrupo: Null[int]()}.Apply(g)
	assert.Nil(t, g.NumeroGrupo)
	assert.Equal(t, int64(2), g.CampaignID)
}

func TestOptionalUnmarshal(t *testing.T) {
	var p CampaignPatch
	require.NoError(t, json.Unmarshal([]byte(`{"facultad":null,"linea":"Pregrado"}`), &p))

	assert.True(t, p.Facultad.Set)
	assert.Nil(t, p.Facultad.Value)
	assert.True(t, p.Linea.Set)
	assert.Equal(t, "Pregrado", *p.Linea.Value)
	assert.False(t, p.Medio.Set)

	var g AdGroupPatch
	assert.Error(t, json.Unmarshal([]byte(`{"numero_grupo":"uno"}`), &g))
}
