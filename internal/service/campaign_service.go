// internal/service/campaign_service.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/unclebandit/campaign-admin/internal/errors"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/repository"
)

type CampaignService struct {
	CampaignRepo  repository.CampaignRepositoryInterface
	HierarchyRepo repository.HierarchyRepositoryInterface
	Validate      *validator.Validate
	Events        *Publisher
}

func NewCampaignService(
	campaigns repository.CampaignRepositoryInterface,
	hierarchy repository.HierarchyRepositoryInterface,
	v *validator.Validate,
	events *Publisher,
) *CampaignService {
	return &CampaignService{CampaignRepo: campaigns, HierarchyRepo: hierarchy, Validate: v, Events: events}
}

func (s *CampaignService) List(ctx context.Context) ([]*model.Campaign, error) {
	return s.CampaignRepo.List(ctx)
}

func (s *CampaignService) Get(ctx context.Context, id int64) (*model.Campaign, error) {
	return s.CampaignRepo.GetByID(ctx, id)
}

func (s *CampaignService) Create(ctx context.Context, in model.CampaignInput) (*model.Campaign, error) {
	if err := validate(s.Validate, in); err != nil {
		return nil, err
	}
	c := in.Campaign()
	if err := s.CampaignRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	s.Events.publish(model.EntityCampaign, model.ActionCreated, c.ID)
	return c, nil
}

// Update merges the provided fields onto the stored campaign.
func (s *CampaignService) Update(ctx context.Context, id int64, patch model.CampaignPatch) (*model.Campaign, error) {
	if err := validate(s.Validate, patch); err != nil {
		return nil, err
	}
	c, err := s.CampaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(c)
	if err := s.CampaignRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.Events.publish(model.EntityCampaign, model.ActionUpdated, c.ID)
	return c, nil
}

// Delete removes the campaign together with its ad groups and ads.
func (s *CampaignService) Delete(ctx context.Context, id int64) error {
	ok, err := s.CampaignRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if !ok {
		return appErrors.NewNotFound(model.EntityCampaign, id)
	}
	s.Events.publish(model.EntityCampaign, model.ActionDeleted, id)
	return nil
}

func (s *CampaignService) Search(ctx context.Context, filter model.SearchFilter) ([]model.CampaignSearchResult, error) {
	return s.CampaignRepo.Search(ctx, filter)
}

func (s *CampaignService) CompleteHierarchy(ctx context.Context) ([]model.CampaignWithAdGroups, error) {
	return s.HierarchyRepo.CompleteHierarchy(ctx)
}
