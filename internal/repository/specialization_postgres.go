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

type SpecializationRepo struct {
	db Querier
}

func NewSpecializationRepository(db Querier) *SpecializationRepo {
	return &SpecializationRepo{
		db: db,
	}
}

func (r *SpecializationRepo) Create(ctx context.Context, dto domain.CreateSpecializationDTO) (int64, error) {
	query := `
		INSERT INTO specializations (name, description, icon, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Name,
		dto.Description,
		dto.Icon,
		dto.IsActive,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create specialization: %w", err)
	}

	return id, nil
}

func (r *SpecializationRepo) GetByID(ctx context.Context, id int64) (*domain.Specialization, error) {
	query := `
		SELECT id, name, description, icon, is_active, created_at, updated_at
		FROM specializations
		WHERE id = $1
	`

	var specialization domain.Specialization
	err := r.db.QueryRow(ctx, query, id).Scan(
		&specialization.ID,
		&specialization.Name,
		&specialization.Description,
		&specialization.Icon,
		&specialization.IsActive,
		&specialization.CreatedAt,
		&specialization.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get specialization: %w", err)
	}

	return &specialization, nil
}

func (r *SpecializationRepo) Update(ctx context.Context, id int64, dto domain.UpdateSpecializationDTO) error {
	setValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if dto.Name != nil {
		setValues = append(setValues, fmt.Sprintf("name = $%d", argID))
		args = append(args, *dto.Name)
		argID++
	}

	if dto.Description != nil {
		setValues = append(setValues, fmt.Sprintf("description = $%d", argID))
		args = append(args, *dto.Description)
		argID++
	}

	if dto.Icon != nil {
		setValues = append(setValues, fmt.Sprintf("icon = $%d", argID))
		args = append(args, *dto.Icon)
		argID++
	}

	if dto.IsActive != nil {
		setValues = append(setValues, fmt.Sprintf("is_active = $%d", argID))
		args = append(args, *dto.IsActive)
		argID++
	}

	setValues = append(setValues, fmt.Sprintf("updated_at = $%d", argID))
	args = append(args, time.Now())
	argID++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE specializations
		SET %s
		WHERE id = $%d
	`, strings.Join(setValues, ", "), argID)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update specialization: %w", err)
	}

	return nil
}

func (r *SpecializationRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM specializations WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete specialization: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *SpecializationRepo) List(ctx context.Context, filter domain.SpecializationFilter) ([]domain.Specialization, int, error) {
	whereValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if filter.IsActive != nil {
		whereValues = append(whereValues, fmt.Sprintf("is_active = $%d", argID))
		args = append(args, *filter.IsActive)
		argID++
	}

	if filter.SearchTerm != nil {
		whereValues = append(whereValues, fmt.Sprintf("name ILIKE $%d", argID))
		args = append(args, "%"+*filter.SearchTerm+"%")
		argID++
	}

	whereClause := ""
	if len(whereValues) > 0 {
		whereClause = "WHERE " + strings.Join(whereValues, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM specializations %s", whereClause)

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count specializations: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, description, icon, is_active, created_at, updated_at
		FROM specializations
		%s
		ORDER BY name
	`, whereClause)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list specializations: %w", err)
	}
	defer rows.Close()

	specializations := make([]domain.Specialization, 0)
	for rows.Next() {
		var specialization domain.Specialization
		err := rows.Scan(
			&specialization.ID,
			&specialization.Name,
			&specialization.Description,
			&specialization.Icon,
			&specialization.IsActive,
			&specialization.CreatedAt,
			&specialization.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan specialization: %w", err)
		}
		specializations = append(specializations, specialization)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read specializations: %w", err)
	}

	return specializations, total, nil
}
