package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID             int64             `json:"id"`
	PatientID      *int64            `json:"patient_id,omitempty"`
	PatientName    string            `json:"patient_name"`
	PatientPhone   string            `json:"patient_phone"`
	PatientEmail   *string           `json:"patient_email,omitempty"`
	PatientAge     *int              `json:"patient_age,omitempty"`
	PatientGender  string            `json:"patient_gender,omitempty"`
	DoctorID       *int64            `json:"doctor_id,omitempty"`
	DoctorName     string            `json:"doctor_name,omitempty"`
	Specialization string            `json:"specialization"`
	Date           string            `json:"appointment_date"`
	Time           string            `json:"appointment_time"`
	Status         AppointmentStatus `json:"status"`
	BookingSource  string            `json:"booking_source,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CreateAppointmentDTO is the public booking request. The caller supplies a
// combined RFC 3339 datetime; date and time columns are derived from it on the
// server. Doctor may be referenced by id or, as a fallback, by exact name.
type CreateAppointmentDTO struct {
	PatientName         string  `json:"patient_name" binding:"required"`
	Phone               string  `json:"phone" binding:"required"`
	Email               string  `json:"email"`
	Age                 *int    `json:"age"`
	Gender              string  `json:"gender"`
	Service             string  `json:"service" binding:"required"`
	Doctor              string  `json:"doctor"`
	DoctorID            *int64  `json:"doctor_id"`
	AppointmentDatetime string  `json:"appointment_datetime" binding:"required"`
	BookingSource       string  `json:"booking_source"`
	Notes               string  `json:"notes"`
}

// BookingConfirmation is returned after a successful booking. Token is the
// human-shareable reference code handed to the patient.
type BookingConfirmation struct {
	Token          string `json:"token"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Doctor         string `json:"doctor,omitempty"`
	Specialization string `json:"specialization"`
	PatientName    string `json:"patient_name"`
}

type UpdateAppointmentStatusDTO struct {
	Status AppointmentStatus `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

type AppointmentFilter struct {
	DoctorID      *int64             `json:"doctor_id"`
	Date          *string            `json:"date"`
	Status        *AppointmentStatus `json:"status"`
	ExcludeStatus *AppointmentStatus `json:"exclude_status"`
	Limit         int                `json:"limit"`
	Offset        int                `json:"offset"`
}
