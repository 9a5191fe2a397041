package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/techdigi/hr-backoffice/internal/domain/technology"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
)

const technologyColumns = `t.id, t.name, t.icon_string, t.color_class, t.category, t.created_at, t.updated_at`

type technologyRepositoryImpl struct {
	db database.Pool
}

func NewTechnologyRepository(db database.Pool) technology.TechnologyRepository {
	return &technologyRepositoryImpl{db: db}
}

func scanTechnology(row pgx.Row) (technology.Technology, error) {
	var t technology.Technology
	err := row.Scan(&t.ID, &t.Name, &t.IconString, &t.ColorClass, &t.Category, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func collectTechnologies(rows pgx.Rows) ([]technology.Technology, error) {
	defer rows.Close()

	var out []technology.Technology
	for rows.Next() {
		t, err := scanTechnology(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Create implements technology.TechnologyRepository.
func (r *technologyRepositoryImpl) Create(ctx context.Context, t technology.Technology) (technology.Technology, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO technologies AS t (name, icon_string, color_class, category)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + technologyColumns

	created, err := scanTechnology(q.QueryRow(ctx, query, t.Name, t.IconString, t.ColorClass, string(t.Category)))
	if err != nil {
		if isUniqueViolation(err, "technologies_name_key") {
			return technology.Technology{}, technology.ErrTechnologyNameExists
		}
		return technology.Technology{}, fmt.Errorf("insert technology: %w", err)
	}
	return created, nil
}

// GetByID implements technology.TechnologyRepository.
func (r *technologyRepositoryImpl) GetByID(ctx context.Context, id string) (technology.Technology, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTechnology(q.QueryRow(ctx, `SELECT `+technologyColumns+` FROM technologies t WHERE t.id = $1`, id))
	if err != nil {
		return technology.Technology{}, translate(err, technology.ErrTechnologyNotFound, nil)
	}
	return t, nil
}

// ListByIDs implements technology.TechnologyRepository.
func (r *technologyRepositoryImpl) ListByIDs(ctx context.Context, ids []string) ([]technology.Technology, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+technologyColumns+` FROM technologies t WHERE t.id::text = ANY($1) ORDER BY t.name`, ids)
	if err != nil {
		return nil, err
	}
	return collectTechnologies(rows)
}

// List implements technology.TechnologyRepository.
func (r *technologyRepositoryImpl) List(ctx context.Context) ([]technology.Technology, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+technologyColumns+` FROM technologies t ORDER BY t.name ASC`)
	if err != nil {
		return nil, err
	}
	return collectTechnologies(rows)
}

// Update implements technology.TechnologyRepository.
func (r *technologyRepositoryImpl) Update(ctx context.Context, t technology.Technology) (technology.Technology, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE technologies AS t
		SET name = $1, icon_string = $2, color_class = $3, category = $4, updated_at = NOW()
		WHERE t.id = $5
		RETURNING ` + technologyColumns

	updated, err := scanTechnology(q.QueryRow(ctx, query, t.Name, t.IconString, t.ColorClass, string(t.Category), t.ID))
	if err != nil {
		if isUniqueViolation(err, "technologies_name_key") {
			return technology.Technology{}, technology.ErrTechnologyNameExists
		}
		return technology.Technology{}, translate(err, technology.ErrTechnologyNotFound, nil)
	}
	return updated, nil
}

// Delete implements technology.TechnologyRepository. Links in service_technologies
// cascade with the row.
func (r *technologyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM technologies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return technology.ErrTechnologyNotFound
	}
	return nil
}
