package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/unclebandit/campaign-admin/internal/model"
)

type HierarchyRepositoryInterface interface {
	CompleteHierarchy(ctx context.Context) ([]model.CampaignWithAdGroups, error)
}

// HierarchyRepository reads the full campaign → ad group → ad tree.
type HierarchyRepository struct {
	DB *sql.DB
}

// CompleteHierarchy loads each level with one query and nests them in
// memory. Campaigns keep the listing order (newest first).
func (r *HierarchyRepository) CompleteHierarchy(ctx context.Context) ([]model.CampaignWithAdGroups, error) {
	campaigns, err := (&CampaignRepository{DB: r.DB}).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	groups, err := (&AdGroupRepository{DB: r.DB}).query(ctx, `SELECT `+adGroupColumns+` FROM ad_groups `+byNumeroGrupo)
	if err != nil {
		return nil, fmt.Errorf("list ad groups: %w", err)
	}
	ads, err := (&AdRepository{DB: r.DB}).query(ctx, `SELECT `+adColumns+` FROM ads `+byNumeroGrupo)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	return model.BuildHierarchy(campaigns, groups, ads), nil
}

var _ HierarchyRepositoryInterface = (*HierarchyRepository)(nil)
