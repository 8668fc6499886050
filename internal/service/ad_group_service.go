package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/unclebandit/campaign-admin/internal/errors"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/repository"
)

type AdGroupService struct {
	AdGroupRepo  repository.AdGroupRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
	Validate     *validator.Validate
	Events       *Publisher
}

func NewAdGroupService(
	groups repository.AdGroupRepositoryInterface,
	campaigns repository.CampaignRepositoryInterface,
	v *validator.Validate,
	events *Publisher,
) *AdGroupService {
	return &AdGroupService{AdGroupRepo: groups, CampaignRepo: campaigns, Validate: v, Events: events}
}

func (s *AdGroupService) List(ctx context.Context) ([]*model.AdGroup, error) {
	return s.AdGroupRepo.List(ctx)
}

// ListByCampaign returns the campaign's groups by numero_grupo. An unknown
// campaign simply has no groups.
func (s *AdGroupService) ListByCampaign(ctx context.Context, campaignID int64) ([]*model.AdGroup, error) {
	return s.AdGroupRepo.ListByCampaign(ctx, campaignID)
}

func (s *AdGroupService) Get(ctx context.Context, id int64) (*model.AdGroup, error) {
	return s.AdGroupRepo.GetByID(ctx, id)
}

func (s *AdGroupService) Create(ctx context.Context, in model.AdGroupInput) (*model.AdGroup, error) {
	if err := validate(s.Validate, in); err != nil {
		return nil, err
	}
	if err := s.checkCampaign(ctx, in.CampaignID); err != nil {
		return nil, err
	}
	g := in.AdGroup()
	if err := s.AdGroupRepo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("create ad group: %w", err)
	}
	s.Events.publish(model.EntityAdGroup, model.ActionCreated, g.ID)
	return g, nil
}

func (s *AdGroupService) Update(ctx context.Context, id int64, patch model.AdGroupPatch) (*model.AdGroup, error) {
	if err := validate(s.Validate, patch); err != nil {
		return nil, err
	}
	g, err := s.AdGroupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.CampaignID != nil && *patch.CampaignID != g.CampaignID {
		if err := s.checkCampaign(ctx, *patch.CampaignID); err != nil {
			return nil, err
		}
	}
	patch.Apply(g)
	if err := s.AdGroupRepo.Update(ctx, g); err != nil {
		return nil, err
	}
	s.Events.publish(model.EntityAdGroup, model.ActionUpdated, g.ID)
	return g, nil
}

// Delete removes the ad group and its ads.
func (s *AdGroupService) Delete(ctx context.Context, id int64) error {
	ok, err := s.AdGroupRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete ad group: %w", err)
	}
	if !ok {
		return appErrors.NewNotFound(model.EntityAdGroup, id)
	}
	s.Events.publish(model.EntityAdGroup, model.ActionDeleted, id)
	return nil
}

func (s *AdGroupService) checkCampaign(ctx context.Context, id int64) error {
	if _, err := s.CampaignRepo.GetByID(ctx, id); err != nil {
		if appErrors.IsNotFound(err) {
			return appErrors.NewValidation(appErrors.FieldError{
				Field:   "campaign_id",
				Message: "campaign does not exist",
			})
		}
		return err
	}
	return nil
}
