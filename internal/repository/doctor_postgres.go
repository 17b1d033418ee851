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

type DoctorRepo struct {
	db Querier
}

func NewDoctorRepository(db Querier) *DoctorRepo {
	return &DoctorRepo{
		db: db,
	}
}

const doctorColumns = `
	d.id, d.name, d.specialization_id, s.name, d.email, d.phone, d.experience,
	d.qualification, d.consultation_fee, d.opd_start_time, d.opd_end_time,
	d.languages, d.bio, d.image, d.is_active, d.created_at, d.updated_at
`

func (r *DoctorRepo) Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error) {
	query := `
		INSERT INTO doctors (
			name, specialization_id, email, phone, experience, qualification,
			consultation_fee, opd_start_time, opd_end_time, languages, bio, image,
			is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Name,
		dto.SpecializationID,
		dto.Email,
		dto.Phone,
		dto.Experience,
		dto.Qualification,
		dto.ConsultationFee,
		dto.OPDStartTime,
		dto.OPDEndTime,
		dto.Languages,
		dto.Bio,
		dto.Image,
		dto.IsActive,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create doctor: %w", err)
	}

	return id, nil
}

func (r *DoctorRepo) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM doctors d
		JOIN specializations s ON s.id = d.specialization_id
		WHERE d.id = $1
	`, doctorColumns)

	doctor, err := r.scanDoctor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}

	return doctor, nil
}

func (r *DoctorRepo) GetByName(ctx context.Context, name string) (*domain.Doctor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM doctors d
		JOIN specializations s ON s.id = d.specialization_id
		WHERE d.name = $1
	`, doctorColumns)

	doctor, err := r.scanDoctor(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor by name: %w", err)
	}

	return doctor, nil
}

func (r *DoctorRepo) Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error {
	setValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	addSet := func(column string, value interface{}) {
		setValues = append(setValues, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if dto.Name != nil {
		addSet("name", *dto.Name)
	}
	if dto.SpecializationID != nil {
		addSet("specialization_id", *dto.SpecializationID)
	}
	if dto.Email != nil {
		addSet("email", *dto.Email)
	}
	if dto.Phone != nil {
		addSet("phone", *dto.Phone)
	}
	if dto.Experience != nil {
		addSet("experience", *dto.Experience)
	}
	if dto.Qualification != nil {
		addSet("qualification", *dto.Qualification)
	}
	if dto.ConsultationFee != nil {
		addSet("consultation_fee", *dto.ConsultationFee)
	}
	if dto.OPDStartTime != nil {
		addSet("opd_start_time", *dto.OPDStartTime)
	}
	if dto.OPDEndTime != nil {
		addSet("opd_end_time", *dto.OPDEndTime)
	}
	if dto.Languages != nil {
		addSet("languages", *dto.Languages)
	}
	if dto.Bio != nil {
		addSet("bio", *dto.Bio)
	}
	if dto.Image != nil {
		addSet("image", *dto.Image)
	}
	if dto.IsActive != nil {
		addSet("is_active", *dto.IsActive)
	}

	addSet("updated_at", time.Now())

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE doctors
		SET %s
		WHERE id = $%d
	`, strings.Join(setValues, ", "), argID)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}

	return nil
}

func (r *DoctorRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM doctors WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *DoctorRepo) List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, int, error) {
	whereValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if filter.SpecializationID != nil {
		whereValues = append(whereValues, fmt.Sprintf("d.specialization_id = $%d", argID))
		args = append(args, *filter.SpecializationID)
		argID++
	}

	if filter.IsActive != nil {
		whereValues = append(whereValues, fmt.Sprintf("d.is_active = $%d", argID))
		args = append(args, *filter.IsActive)
		argID++
	}

	if filter.SearchTerm != nil {
		whereValues = append(whereValues, fmt.Sprintf("d.name ILIKE $%d", argID))
		args = append(args, "%"+*filter.SearchTerm+"%")
		argID++
	}

	whereClause := ""
	if len(whereValues) > 0 {
		whereClause = "WHERE " + strings.Join(whereValues, " AND ")
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM doctors d
		JOIN specializations s ON s.id = d.specialization_id
		%s
	`, whereClause)

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count doctors: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM doctors d
		JOIN specializations s ON s.id = d.specialization_id
		%s
		ORDER BY d.name
	`, doctorColumns, whereClause)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer rows.Close()

	doctors := make([]domain.Doctor, 0)
	for rows.Next() {
		doctor, err := r.scanDoctor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan doctor: %w", err)
		}
		doctors = append(doctors, *doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read doctors: %w", err)
	}

	return doctors, total, nil
}

func (r *DoctorRepo) scanDoctor(row pgx.Row) (*domain.Doctor, error) {
	var doctor domain.Doctor
	err := row.Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.SpecializationID,
		&doctor.Specialization,
		&doctor.Email,
		&doctor.Phone,
		&doctor.Experience,
		&doctor.Qualification,
		&doctor.ConsultationFee,
		&doctor.OPDStartTime,
		&doctor.OPDEndTime,
		&doctor.Languages,
		&doctor.Bio,
		&doctor.Image,
		&doctor.IsActive,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &doctor, nil
}
