package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/ariefcatur/gunpla-storefront/internal/catalog"
)

const productsDDL = `
CREATE TABLE IF NOT EXISTS products (
	id               text PRIMARY KEY,
	name             text NOT NULL,
	series           text NOT NULL,
	grade            text NOT NULL,
	scale            text NOT NULL DEFAULT '',
	price_cents      bigint NOT NULL,
	sale_price_cents bigint,
	image            text NOT NULL DEFAULT '',
	description      text NOT NULL DEFAULT '',
	difficulty       text NOT NULL DEFAULT '',
	is_new           boolean NOT NULL DEFAULT false,
	tags             text[],
	lore             jsonb,
	position         int NOT NULL DEFAULT 0
)`

const upsertProduct = `
INSERT INTO products (id, name, series, grade, scale, price_cents, sale_price_cents,
                      image, description, difficulty, is_new, tags, lore, position)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name, series = EXCLUDED.series, grade = EXCLUDED.grade,
	scale = EXCLUDED.scale, price_cents = EXCLUDED.price_cents,
	sale_price_cents = EXCLUDED.sale_price_cents, image = EXCLUDED.image,
	description = EXCLUDED.description, difficulty = EXCLUDED.difficulty,
	is_new = EXCLUDED.is_new, tags = EXCLUDED.tags, lore = EXCLUDED.lore,
	position = EXCLUDED.position`

// SeedCatalog creates the products table and upserts ps in one transaction,
// keeping their order in the position column.
func SeedCatalog(ctx context.Context, db *pgxpool.Pool, ps []catalog.Product) error {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return errors.Wrap(err, "begin seed")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, productsDDL); err != nil {
		return errors.Wrap(err, "create products table")
	}

	b := &pgx.Batch{}
	for i, p := range ps {
		b.Queue(upsertProduct, p.ID, p.Name, string(p.Series), string(p.Grade), p.Scale, p.PriceCents,
			p.SalePriceCents, p.Image, p.Description, string(p.Difficulty), p.IsNew, p.Tags, p.Lore, i)
	}
	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return errors.Wrap(err, "upsert products")
	}
	return errors.Wrap(tx.Commit(ctx), "commit seed")
}
