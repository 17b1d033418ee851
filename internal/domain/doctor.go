package domain

import (
	"time"
)

type Doctor struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	SpecializationID int64     `json:"specialization_id"`
	Specialization   string    `json:"specialization"`
	Email            *string   `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Experience       int       `json:"experience"`
	Qualification    string    `json:"qualification"`
	ConsultationFee  *float64  `json:"consultation_fee,omitempty"`
	OPDStartTime     string    `json:"opd_start_time,omitempty"`
	OPDEndTime       string    `json:"opd_end_time,omitempty"`
	Languages        []string  `json:"languages,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	Image            string    `json:"image,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CreateDoctorDTO struct {
	Name             string   `json:"name" binding:"required"`
	SpecializationID int64    `json:"specialization_id" binding:"required"`
	Email            *string  `json:"email"`
	Phone            string   `json:"phone"`
	Experience       int      `json:"experience"`
	Qualification    string   `json:"qualification" binding:"required"`
	ConsultationFee  *float64 `json:"consultation_fee"`
	OPDStartTime     string   `json:"opd_start_time"`
	OPDEndTime       string   `json:"opd_end_time"`
	Languages        []string `json:"languages"`
	Bio              string   `json:"bio"`
	Image            string   `json:"image"`
	IsActive         bool     `json:"is_active"`
}

type UpdateDoctorDTO struct {
	Name             *string   `json:"name"`
	SpecializationID *int64    `json:"specialization_id"`
	Email            *string   `json:"email"`
	Phone            *string   `json:"phone"`
	Experience       *int      `json:"experience"`
	Qualification    *string   `json:"qualification"`
	ConsultationFee  *float64  `json:"consultation_fee"`
	OPDStartTime     *string   `json:"opd_start_time"`
	OPDEndTime       *string   `json:"opd_end_time"`
	Languages        *[]string `json:"languages"`
	Bio              *string   `json:"bio"`
	Image            *string   `json:"image"`
	IsActive         *bool     `json:"is_active"`
}

type DoctorFilter struct {
	SpecializationID *int64  `json:"specialization_id"`
	IsActive         *bool   `json:"is_active"`
	SearchTerm       *string `json:"search_term"`
	Limit            int     `json:"limit"`
	Offset           int     `json:"offset"`
}
