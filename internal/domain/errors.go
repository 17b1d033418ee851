package domain

import "errors"

var (
	ErrNotFound               = errors.New("record not found")
	ErrValidation             = errors.New("validation failed")
	ErrSlotTaken              = errors.New("time slot is already booked")
	ErrInvalidDate            = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidTime            = errors.New("invalid time format, expected HH:MM")
	ErrInvalidDatetime        = errors.New("invalid appointment datetime")
	ErrClinicClosed           = errors.New("clinic is closed on the requested date")
	ErrInvalidStatus          = errors.New("invalid appointment status transition")
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrSpecializationNotFound = errors.New("specialization not found")
	ErrDuplicateRecord        = errors.New("record already exists")
)
