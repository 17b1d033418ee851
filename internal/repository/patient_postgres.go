package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"clinicbook/internal/domain"
)

type PatientRepo struct {
	db Querier
}

func NewPatientRepository(db Querier) *PatientRepo {
	return &PatientRepo{
		db: db,
	}
}

func (r *PatientRepo) Create(ctx context.Context, dto domain.UpsertPatientDTO) (int64, error) {
	query := `
		INSERT INTO patients (name, email, phone, age, gender, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.Age,
		dto.Gender,
		time.Now(),
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, domain.ErrDuplicateRecord
		}
		return 0, fmt.Errorf("failed to create patient: %w", err)
	}

	return id, nil
}

func (r *PatientRepo) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	return r.getByField(ctx, "id", id)
}

func (r *PatientRepo) GetByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	return r.getByField(ctx, "email", email)
}

func (r *PatientRepo) GetByPhone(ctx context.Context, phone string) (*domain.Patient, error) {
	return r.getByField(ctx, "phone", phone)
}

func (r *PatientRepo) getByField(ctx context.Context, field string, value interface{}) (*domain.Patient, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, phone, age, gender, created_at
		FROM patients
		WHERE %s = $1
	`, field)

	var patient domain.Patient
	err := r.db.QueryRow(ctx, query, value).Scan(
		&patient.ID,
		&patient.Name,
		&patient.Email,
		&patient.Phone,
		&patient.Age,
		&patient.Gender,
		&patient.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	return &patient, nil
}

func (r *PatientRepo) Update(ctx context.Context, id int64, dto domain.UpsertPatientDTO) error {
	query := `
		UPDATE patients
		SET name = $1, phone = $2, age = COALESCE($3, age), gender = COALESCE(NULLIF($4, ''), gender)
		WHERE id = $5
	`

	_, err := r.db.Exec(ctx, query, dto.Name, dto.Phone, dto.Age, dto.Gender, id)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	return nil
}

func (r *PatientRepo) List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, int, error) {
	whereValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if filter.SearchTerm != nil {
		whereValues = append(whereValues, fmt.Sprintf("(name ILIKE $%d OR phone ILIKE $%d)", argID, argID))
		args = append(args, "%"+*filter.SearchTerm+"%")
		argID++
	}

	whereClause := ""
	if len(whereValues) > 0 {
		whereClause = "WHERE " + strings.Join(whereValues, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM patients %s", whereClause)

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, email, phone, age, gender, created_at
		FROM patients
		%s
		ORDER BY created_at DESC
	`, whereClause)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	patients := make([]domain.Patient, 0)
	for rows.Next() {
		var patient domain.Patient
		err := rows.Scan(
			&patient.ID,
			&patient.Name,
			&patient.Email,
			&patient.Phone,
			&patient.Age,
			&patient.Gender,
			&patient.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read patients: %w", err)
	}

	return patients, total, nil
}
