package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clinicbook/internal/domain"
	"clinicbook/internal/repository"
)

type SpecializationServiceImpl struct {
	repo   repository.SpecializationRepository
	logger *zap.Logger
}

func NewSpecializationService(repo repository.SpecializationRepository, logger *zap.Logger) *SpecializationServiceImpl {
	return &SpecializationServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *SpecializationServiceImpl) Create(ctx context.Context, dto domain.CreateSpecializationDTO) (int64, error) {
	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("failed to create specialization", zap.Error(err))
		return 0, fmt.Errorf("failed to create specialization: %w", err)
	}

	return id, nil
}

func (s *SpecializationServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Specialization, error) {
	specialization, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get specialization", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return specialization, nil
}

func (s *SpecializationServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateSpecializationDTO) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		s.logger.Error("failed to update specialization", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update specialization: %w", err)
	}

	return nil
}

func (s *SpecializationServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete specialization", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *SpecializationServiceImpl) List(ctx context.Context, filter domain.SpecializationFilter) ([]domain.Specialization, int, error) {
	specializations, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list specializations", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list specializations: %w", err)
	}
	return specializations, total, nil
}
