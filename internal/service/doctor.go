package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"clinicbook/internal/domain"
	"clinicbook/internal/repository"
)

type DoctorServiceImpl struct {
	repo               repository.DoctorRepository
	specializationRepo repository.SpecializationRepository
	logger             *zap.Logger
}

func NewDoctorService(
	repo repository.DoctorRepository,
	specializationRepo repository.SpecializationRepository,
	logger *zap.Logger,
) *DoctorServiceImpl {
	return &DoctorServiceImpl{
		repo:               repo,
		specializationRepo: specializationRepo,
		logger:             logger,
	}
}

func (s *DoctorServiceImpl) Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error) {
	if _, err := s.specializationRepo.GetByID(ctx, dto.SpecializationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrSpecializationNotFound
		}
		s.logger.Error("failed to check specialization", zap.Error(err))
		return 0, err
	}

	if dto.OPDStartTime != "" || dto.OPDEndTime != "" {
		if err := validateOPDWindow(dto.OPDStartTime, dto.OPDEndTime); err != nil {
			return 0, err
		}
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("failed to create doctor", zap.Error(err))
		return 0, fmt.Errorf("failed to create doctor: %w", err)
	}

	return id, nil
}

func (s *DoctorServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	doctor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get doctor", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return doctor, nil
}

func (s *DoctorServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if dto.SpecializationID != nil {
		if _, err := s.specializationRepo.GetByID(ctx, *dto.SpecializationID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrSpecializationNotFound
			}
			return err
		}
	}

	if dto.OPDStartTime != nil || dto.OPDEndTime != nil {
		if dto.OPDStartTime == nil || dto.OPDEndTime == nil {
			return domain.ErrInvalidTime
		}
		if err := validateOPDWindow(*dto.OPDStartTime, *dto.OPDEndTime); err != nil {
			return err
		}
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		s.logger.Error("failed to update doctor", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update doctor: %w", err)
	}

	return nil
}

func (s *DoctorServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete doctor", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *DoctorServiceImpl) List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, int, error) {
	doctors, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list doctors", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, total, nil
}
