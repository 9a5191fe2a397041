package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/techdigi/hr-backoffice/internal/domain/offering"
	"github.com/techdigi/hr-backoffice/internal/domain/technology"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
)

const offeringColumns = `s.id, s.title, s.description, s.slug, s.card_image, s.hero_title, s.hero_description,
		s.hero_image, s.strategy_steps, s.services_offered, s.created_at, s.updated_at`

type offeringRepositoryImpl struct {
	db database.Pool
}

func NewOfferingRepository(db database.Pool) offering.OfferingRepository {
	return &offeringRepositoryImpl{db: db}
}

func scanOffering(row pgx.Row) (offering.Offering, error) {
	var (
		o       offering.Offering
		steps   []byte
		offered []byte
	)
	err := row.Scan(
		&o.ID,
		&o.Title,
		&o.Description,
		&o.Slug,
		&o.CardImage,
		&o.HeroTitle,
		&o.HeroDescription,
		&o.HeroImage,
		&steps,
		&offered,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return offering.Offering{}, err
	}
	if err := json.Unmarshal(steps, &o.StrategySteps); err != nil {
		return offering.Offering{}, fmt.Errorf("decode strategy steps: %w", err)
	}
	if err := json.Unmarshal(offered, &o.ServicesOffered); err != nil {
		return offering.Offering{}, fmt.Errorf("decode services offered: %w", err)
	}
	return o, nil
}

func encodeLists(o offering.Offering) ([]byte, []byte, error) {
	steps := o.StrategySteps
	if steps == nil {
		steps = []offering.StrategyStep{}
	}
	offered := o.ServicesOffered
	if offered == nil {
		offered = []offering.OfferedItem{}
	}
	stepsJSON, err := json.Marshal(steps)
	if err != nil {
		return nil, nil, err
	}
	offeredJSON, err := json.Marshal(offered)
	if err != nil {
		return nil, nil, err
	}
	return stepsJSON, offeredJSON, nil
}

// Create implements offering.OfferingRepository.
func (r *offeringRepositoryImpl) Create(ctx context.Context, o offering.Offering) (offering.Offering, error) {
	steps, offered, err := encodeLists(o)
	if err != nil {
		return offering.Offering{}, err
	}

	var created offering.Offering
	err = WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			INSERT INTO services AS s (
				title, description, slug, card_image, hero_title, hero_description, hero_image,
				strategy_steps, services_offered
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING ` + offeringColumns

		created, err = scanOffering(q.QueryRow(ctx, query,
			o.Title, o.Description, o.Slug, o.CardImage, o.HeroTitle, o.HeroDescription, o.HeroImage, steps, offered,
		))
		if err != nil {
			return err
		}
		return r.replaceLinks(ctx, created.ID, o.TechnologyIDs)
	})
	if err != nil {
		if isUniqueViolation(err, "services_slug_key") {
			return offering.Offering{}, &offering.SlugConflictError{Slug: o.Slug}
		}
		return offering.Offering{}, fmt.Errorf("insert service: %w", err)
	}
	return r.GetByID(ctx, created.ID)
}

// Update implements offering.OfferingRepository.
func (r *offeringRepositoryImpl) Update(ctx context.Context, o offering.Offering) (offering.Offering, error) {
	steps, offered, err := encodeLists(o)
	if err != nil {
		return offering.Offering{}, err
	}

	err = WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			UPDATE services
			SET title = $1, description = $2, slug = $3, card_image = $4, hero_title = $5,
				hero_description = $6, hero_image = $7, strategy_steps = $8, services_offered = $9,
				updated_at = NOW()
			WHERE id = $10
		`
		tag, err := q.Exec(ctx, query,
			o.Title, o.Description, o.Slug, o.CardImage, o.HeroTitle, o.HeroDescription, o.HeroImage, steps, offered, o.ID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return offering.ErrOfferingNotFound
		}
		return r.replaceLinks(ctx, o.ID, o.TechnologyIDs)
	})
	if err != nil {
		if isUniqueViolation(err, "services_slug_key") {
			return offering.Offering{}, &offering.SlugConflictError{Slug: o.Slug}
		}
		return offering.Offering{}, err
	}
	return r.GetByID(ctx, o.ID)
}

// replaceLinks rewrites the technology links of a service, keeping the given order.
// Unknown technology ids are skipped.
func (r *offeringRepositoryImpl) replaceLinks(ctx context.Context, serviceID string, techIDs []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM service_technologies WHERE service_id = $1`, serviceID); err != nil {
		return err
	}
	if len(techIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO service_technologies (service_id, technology_id, position)
		SELECT $1::uuid, t.id, ids.ord
		FROM UNNEST($2::text[]) WITH ORDINALITY AS ids(id, ord)
		JOIN technologies t ON t.id::text = ids.id
		ON CONFLICT DO NOTHING
	`
	_, err := q.Exec(ctx, query, serviceID, techIDs)
	return err
}

func (r *offeringRepositoryImpl) getOne(ctx context.Context, where string, arg any) (offering.Offering, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanOffering(q.QueryRow(ctx, `SELECT `+offeringColumns+` FROM services s WHERE `+where, arg))
	if err != nil {
		return offering.Offering{}, translate(err, offering.ErrOfferingNotFound, nil)
	}
	list := []offering.Offering{o}
	if err := r.attachTechnologies(ctx, list); err != nil {
		return offering.Offering{}, err
	}
	return list[0], nil
}

// GetByID implements offering.OfferingRepository.
func (r *offeringRepositoryImpl) GetByID(ctx context.Context, id string) (offering.Offering, error) {
	return r.getOne(ctx, `s.id = $1`, id)
}

// GetBySlug implements offering.OfferingRepository.
func (r *offeringRepositoryImpl) GetBySlug(ctx context.Context, slug string) (offering.Offering, error) {
	return r.getOne(ctx, `s.slug = $1`, slug)
}

// List implements offering.OfferingRepository.
func (r *offeringRepositoryImpl) List(ctx context.Context) ([]offering.Offering, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+offeringColumns+` FROM services s ORDER BY s.created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []offering.Offering
	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if err := r.attachTechnologies(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachTechnologies loads the linked technologies of every offering in one query.
func (r *offeringRepositoryImpl) attachTechnologies(ctx context.Context, list []offering.Offering) error {
	if len(list) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	ids := make([]string, 0, len(list))
	index := make(map[string]int, len(list))
	for i, o := range list {
		ids = append(ids, o.ID)
		index[o.ID] = i
	}

	query := `
		SELECT st.service_id, ` + technologyColumns + `
		FROM service_technologies st
		JOIN technologies t ON t.id = st.technology_id
		WHERE st.service_id::text = ANY($1)
		ORDER BY st.position ASC
	`
	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			serviceID string
			t         technology.Technology
		)
		if err := rows.Scan(&serviceID, &t.ID, &t.Name, &t.IconString, &t.ColorClass, &t.Category, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return err
		}
		if i, ok := index[serviceID]; ok {
			list[i].Technologies = append(list[i].Technologies, t)
			list[i].TechnologyIDs = append(list[i].TechnologyIDs, t.ID)
		}
	}
	return rows.Err()
}

// Delete implements offering.OfferingRepository.
func (r *offeringRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return offering.ErrOfferingNotFound
	}
	return nil
}

// SlugTaken implements offering.OfferingRepository.
func (r *offeringRepositoryImpl) SlugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var taken bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM services WHERE slug = $1 AND id::text <> $2)`,
		slug, exceptID,
	).Scan(&taken)
	return taken, err
}
