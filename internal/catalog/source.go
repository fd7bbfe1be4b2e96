package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// Source produces the product list once at startup.
type Source interface {
	Load(ctx context.Context) ([]Product, error)
}

type StaticSource struct{}

func (StaticSource) Load(context.Context) ([]Product, error) { return Static(), nil }

// PGSource reads the catalog from the products table:
//
//	id text, name text, series text, grade text, scale text,
//	price_cents bigint, sale_price_cents bigint null, image text,
//	description text, difficulty text, is_new bool, tags text[], lore jsonb null,
//	position int
type PGSource struct{ DB *pgxpool.Pool }

func (s *PGSource) Load(ctx context.Context) ([]Product, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, name, series, grade, scale, price_cents, sale_price_cents,
		       image, description, difficulty, is_new, COALESCE(tags, '{}'), lore
		FROM products ORDER BY position, id`)
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		var series, grade, difficulty string
		if err := rows.Scan(&p.ID, &p.Name, &series, &grade, &p.Scale, &p.PriceCents, &p.SalePriceCents,
			&p.Image, &p.Description, &difficulty, &p.IsNew, &p.Tags, &p.Lore); err != nil {
			return nil, errors.Wrap(err, "scan product")
		}
		p.Series, p.Grade, p.Difficulty = Series(series), Grade(grade), Difficulty(difficulty)
		if len(p.Tags) == 0 {
			p.Tags = nil
		}
		out = append(out, p)
	}
	return out, errors.Wrap(rows.Err(), "iterate products")
}

// Load builds the Catalog from src.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	ps, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return New(ps)
}
