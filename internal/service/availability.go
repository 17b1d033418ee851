package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"clinicbook/config"
	"clinicbook/internal/domain"
	"clinicbook/internal/repository"
	"clinicbook/pkg/timefmt"
)

const clockLayout = "15:04"

// AvailabilityServiceImpl computes the bookable slot grid for a doctor and a
// date: clinic operating hours for that weekday, intersected with the
// doctor's OPD window, split by slot duration, minus the lunch break and the
// already-booked times. Sundays are closed clinic-wide.
type AvailabilityServiceImpl struct {
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	clinic          config.ClinicConfig
	location        *time.Location
	logger          *zap.Logger
}

func NewAvailabilityService(
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	clinic config.ClinicConfig,
	logger *zap.Logger,
) (*AvailabilityServiceImpl, error) {
	location, err := time.LoadLocation(clinic.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load clinic timezone: %w", err)
	}

	return &AvailabilityServiceImpl{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		clinic:          clinic,
		location:        location,
		logger:          logger,
	}, nil
}

func (s *AvailabilityServiceImpl) GetDailySlots(ctx context.Context, doctorID int64, date string) ([]domain.TimeSlot, error) {
	day, err := timefmt.ParseDate(date, s.location)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	if day.Weekday() == time.Sunday {
		return []domain.TimeSlot{}, nil
	}

	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		s.logger.Error("failed to get doctor for availability", zap.Int64("doctor_id", doctorID), zap.Error(err))
		return nil, err
	}

	open, close_, err := s.clinicWindow(day.Weekday())
	if err != nil {
		return nil, err
	}

	if doctor.OPDStartTime != "" && doctor.OPDEndTime != "" {
		opdStart, err := time.Parse(clockLayout, doctor.OPDStartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid doctor opd start time: %w", err)
		}
		opdEnd, err := time.Parse(clockLayout, doctor.OPDEndTime)
		if err != nil {
			return nil, fmt.Errorf("invalid doctor opd end time: %w", err)
		}

		if opdStart.After(open) {
			open = opdStart
		}
		if opdEnd.Before(close_) {
			close_ = opdEnd
		}
	}

	booked, err := s.appointmentRepo.GetBookedTimes(ctx, doctorID, date)
	if err != nil {
		s.logger.Error("failed to get booked times", zap.Int64("doctor_id", doctorID), zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("failed to get booked times: %w", err)
	}

	bookedSet := make(map[string]bool, len(booked))
	for _, t := range booked {
		bookedSet[t] = true
	}

	slots := make([]domain.TimeSlot, 0)
	for current := open; current.Before(close_) || current.Equal(close_); current = current.Add(s.clinic.SlotDuration) {
		clock := current.Format(clockLayout)
		if clock == s.clinic.LunchBreak {
			continue
		}
		slots = append(slots, domain.TimeSlot{
			Time:      clock,
			Available: !bookedSet[clock],
		})
	}

	return slots, nil
}

func (s *AvailabilityServiceImpl) clinicWindow(weekday time.Weekday) (time.Time, time.Time, error) {
	openStr, closeStr := s.clinic.WeekdayOpen, s.clinic.WeekdayClose
	if weekday == time.Saturday {
		openStr, closeStr = s.clinic.SaturdayOpen, s.clinic.SaturdayClose
	}

	open, err := time.Parse(clockLayout, openStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid clinic opening time: %w", err)
	}

	close_, err := time.Parse(clockLayout, closeStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid clinic closing time: %w", err)
	}

	return open, close_, nil
}

func validateOPDWindow(start, end string) error {
	if start == "" || end == "" {
		return domain.ErrInvalidTime
	}

	startTime, err := time.Parse(clockLayout, start)
	if err != nil {
		return domain.ErrInvalidTime
	}

	endTime, err := time.Parse(clockLayout, end)
	if err != nil {
		return domain.ErrInvalidTime
	}

	if !endTime.After(startTime) {
		return fmt.Errorf("opd end time must be after start time")
	}

	return nil
}
