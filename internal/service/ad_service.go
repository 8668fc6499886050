package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/unclebandit/campaign-admin/internal/errors"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/repository"
)

type AdService struct {
	AdRepo      repository.AdRepositoryInterface
	AdGroupRepo repository.AdGroupRepositoryInterface
	Validate    *validator.Validate
	Events      *Publisher
}

func NewAdService(
	ads repository.AdRepositoryInterface,
	groups repository.AdGroupRepositoryInterface,
	v *validator.Validate,
	events *Publisher,
) *AdService {
	return &AdService{AdRepo: ads, AdGroupRepo: groups, Validate: v, Events: events}
}

func (s *AdService) List(ctx context.Context) ([]*model.Ad, error) {
	return s.AdRepo.List(ctx)
}

func (s *AdService) ListByAdGroup(ctx context.Context, adGroupID int64) ([]*model.Ad, error) {
	return s.AdRepo.ListByAdGroup(ctx, adGroupID)
}

func (s *AdService) Get(ctx context.Context, id int64) (*model.Ad, error) {
	return s.AdRepo.GetByID(ctx, id)
}

func (s *AdService) Create(ctx context.Context, in model.AdInput) (*model.Ad, error) {
	if err := validate(s.Validate, in); err != nil {
		return nil, err
	}
	if err := s.checkAdGroup(ctx, in.AdGroupID); err != nil {
		return nil, err
	}
	a := in.Ad()
	if err := s.AdRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create ad: %w", err)
	}
	s.Events.publish(model.EntityAd, model.ActionCreated, a.ID)
	return a, nil
}

func (s *AdService) Update(ctx context.Context, id int64, patch model.AdPatch) (*model.Ad, error) {
	if err := validate(s.Validate, patch); err != nil {
		return nil, err
	}
	a, err := s.AdRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.AdGroupID != nil && *patch.AdGroupID != a.AdGroupID {
		if err := s.checkAdGroup(ctx, *patch.AdGroupID); err != nil {
			return nil, err
		}
	}
	patch.Apply(a)
	if err := s.AdRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	s.Events.publish(model.EntityAd, model.ActionUpdated, a.ID)
	return a, nil
}

func (s *AdService) Delete(ctx context.Context, id int64) error {
	ok, err := s.AdRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete ad: %w", err)
	}
	if !ok {
		return appErrors.NewNotFound(model.EntityAd, id)
	}
	s.Events.publish(model.EntityAd, model.ActionDeleted, id)
	return nil
}

func (s *AdService) checkAdGroup(ctx context.Context, id int64) error {
	if _, err := s.AdGroupRepo.GetByID(ctx, id); err != nil {
		if appErrors.IsNotFound(err) {
			return appErrors.NewValidation(appErrors.FieldError{
				Field:   "ad_group_id",
				Message: "ad group does not exist",
			})
		}
		return err
	}
	return nil
}
