package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"clinicbook/internal/domain"
)

type AppointmentRepo struct {
	db Querier
}

func NewAppointmentRepository(db Querier) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

const appointmentColumns = `
	a.id, a.patient_id, a.patient_name, a.patient_phone, a.patient_email,
	a.patient_age, a.patient_gender, a.doctor_id, d.name, a.specialization,
	a.appointment_date, a.appointment_time, a.status, a.booking_source,
	a.notes, a.created_at, a.updated_at
`

func (r *AppointmentRepo) Create(ctx context.Context, appointment domain.Appointment) (int64, error) {
	query := `
		INSERT INTO appointments (
			patient_id, patient_name, patient_phone, patient_email, patient_age,
			patient_gender, doctor_id, specialization, appointment_date,
			appointment_time, status, booking_source, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		appointment.PatientID,
		appointment.PatientName,
		appointment.PatientPhone,
		appointment.PatientEmail,
		appointment.PatientAge,
		appointment.PatientGender,
		appointment.DoctorID,
		appointment.Specialization,
		appointment.Date,
		appointment.Time,
		appointment.Status,
		appointment.BookingSource,
		appointment.Notes,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create appointment: %w", err)
	}

	return id, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM appointments a
		LEFT JOIN doctors d ON d.id = a.doctor_id
		WHERE a.id = $1
	`, appointmentColumns)

	appointment, err := r.scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return appointment, nil
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	query := `
		UPDATE appointments
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	tag, err := r.db.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	whereValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if filter.DoctorID != nil {
		whereValues = append(whereValues, fmt.Sprintf("a.doctor_id = $%d", argID))
		args = append(args, *filter.DoctorID)
		argID++
	}

	if filter.Date != nil {
		whereValues = append(whereValues, fmt.Sprintf("a.appointment_date = $%d", argID))
		args = append(args, *filter.Date)
		argID++
	}

	if filter.Status != nil {
		whereValues = append(whereValues, fmt.Sprintf("a.status = $%d", argID))
		args = append(args, *filter.Status)
		argID++
	}

	if filter.ExcludeStatus != nil {
		whereValues = append(whereValues, fmt.Sprintf("a.status != $%d", argID))
		args = append(args, *filter.ExcludeStatus)
		argID++
	}

	whereClause := ""
	if len(whereValues) > 0 {
		whereClause = "WHERE " + strings.Join(whereValues, " AND ")
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM appointments a
		%s
	`, whereClause)

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM appointments a
		LEFT JOIN doctors d ON d.id = a.doctor_id
		%s
		ORDER BY a.created_at DESC
	`, appointmentColumns, whereClause)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		appointment, err := r.scanAppointment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, *appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read appointments: %w", err)
	}

	return appointments, total, nil
}

// GetBookedTimes returns the occupied "HH:MM" slots for a doctor on a date.
// Cancelled appointments do not block a slot.
func (r *AppointmentRepo) GetBookedTimes(ctx context.Context, doctorID int64, date string) ([]string, error) {
	query := `
		SELECT appointment_time
		FROM appointments
		WHERE doctor_id = $1 AND appointment_date = $2 AND status != $3
	`

	rows, err := r.db.Query(ctx, query, doctorID, date, domain.AppointmentStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to get booked times: %w", err)
	}
	defer rows.Close()

	times := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan booked time: %w", err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read booked times: %w", err)
	}

	return times, nil
}

func (r *AppointmentRepo) scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var doctorName *string
	err := row.Scan(
		&appointment.ID,
		&appointment.PatientID,
		&appointment.PatientName,
		&appointment.PatientPhone,
		&appointment.PatientEmail,
		&appointment.PatientAge,
		&appointment.PatientGender,
		&appointment.DoctorID,
		&doctorName,
		&appointment.Specialization,
		&appointment.Date,
		&appointment.Time,
		&appointment.Status,
		&appointment.BookingSource,
		&appointment.Notes,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if doctorName != nil {
		appointment.DoctorName = *doctorName
	}

	return &appointment, nil
}
