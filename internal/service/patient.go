package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clinicbook/internal/domain"
	"clinicbook/internal/repository"
)

type PatientServiceImpl struct {
	repo   repository.PatientRepository
	logger *zap.Logger
}

func NewPatientService(repo repository.PatientRepository, logger *zap.Logger) *PatientServiceImpl {
	return &PatientServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *PatientServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get patient", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return patient, nil
}

func (s *PatientServiceImpl) List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, int, error) {
	patients, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list patients", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, total, nil
}
