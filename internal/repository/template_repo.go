package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mindcare/internal/domain"
)

// TemplateRepository lee el corpus terapéutico desde Postgres.
type TemplateRepository interface {
	ListTemplates(ctx context.Context) ([]domain.TemplateEntry, error)
}

type PgTemplateRepository struct {
	pool *pgxpool.Pool
}

func NewPgTemplateRepository(pool *pgxpool.Pool) *PgTemplateRepository {
	return &PgTemplateRepository{pool: pool}
}

func (r *PgTemplateRepository) ListTemplates(ctx context.Context) ([]domain.TemplateEntry, error) {
	const query = `
		SELECT topic, keywords, user_context, response, technique, tone
		FROM therapy_templates
		ORDER BY position, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.TemplateEntry
	for rows.Next() {
		var (
			e        domain.TemplateEntry
			topic    string
			tech     string
			tone     string
			keywords []string
		)
		if err := rows.Scan(&topic, &keywords, &e.UserContext, &e.Response, &tech, &tone); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		e.Topic = domain.Topic(topic)
		e.Technique = domain.Technique(tech)
		e.Tone = domain.Tone(tone)
		e.Keywords = keywords
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Name y Load permiten usar el repositorio como fuente del corpus.
func (r *PgTemplateRepository) Name() string { return "postgres:therapy_templates" }

func (r *PgTemplateRepository) Load(ctx context.Context) ([]domain.TemplateEntry, error) {
	if r == nil || r.pool == nil {
		return nil, fmt.Errorf("template repository not configured")
	}
	return r.ListTemplates(ctx)
}
