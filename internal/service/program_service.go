package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/unclebandit/campaign-admin/internal/errors"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/repository"
)

type ProgramService struct {
	ProgramRepo repository.ProgramRepositoryInterface
	Validate    *validator.Validate
	Events      *Publisher
}

func NewProgramService(programs repository.ProgramRepositoryInterface, v *validator.Validate, events *Publisher) *ProgramService {
	return &ProgramService{ProgramRepo: programs, Validate: v, Events: events}
}

func (s *ProgramService) List(ctx context.Context) ([]*model.Program, error) {
	return s.ProgramRepo.List(ctx)
}

func (s *ProgramService) Get(ctx context.Context, id int64) (*model.Program, error) {
	return s.ProgramRepo.GetByID(ctx, id)
}

func (s *ProgramService) Create(ctx context.Context, in model.ProgramInput) (*model.Program, error) {
	if err := validate(s.Validate, in); err != nil {
		return nil, err
	}
	p := in.Program()
	if err := s.ProgramRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	s.Events.publish(model.EntityProgram, model.ActionCreated, p.ID)
	return p, nil
}

func (s *ProgramService) Update(ctx context.Context, id int64, patch model.ProgramPatch) (*model.Program, error) {
	if err := validate(s.Validate, patch); err != nil {
		return nil, err
	}
	p, err := s.ProgramRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(p)
	if err := s.ProgramRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.Events.publish(model.EntityProgram, model.ActionUpdated, p.ID)
	return p, nil
}

func (s *ProgramService) Delete(ctx context.Context, id int64) error {
	ok, err := s.ProgramRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	if !ok {
		return appErrors.NewNotFound(model.EntityProgram, id)
	}
	s.Events.publish(model.EntityProgram, model.ActionDeleted, id)
	return nil
}
