package domain

import (
	"time"
)

type Patient struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Age       *int      `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UpsertPatientDTO carries the contact details collected during booking.
// Matching against existing records is done by email first, then phone.
type UpsertPatientDTO struct {
	Name   string  `json:"name"`
	Email  *string `json:"email"`
	Phone  string  `json:"phone"`
	Age    *int    `json:"age"`
	Gender string  `json:"gender"`
}

type PatientFilter struct {
	SearchTerm *string `json:"search_term"`
	Limit      int     `json:"limit"`
	Offset     int     `json:"offset"`
}
