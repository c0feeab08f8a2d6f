package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"bazaraki-deals/models"
)

// PostgresStore persists observed listings to PostgreSQL, one row per unique
// listing URL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresStore.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 3; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	ps := &PostgresStore{db: db}
	if err := ps.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return ps, nil
}

func (ps *PostgresStore) migrate() error {
	_, err := ps.db.Exec(`
		CREATE TABLE IF NOT EXISTS listings (
			id              SERIAL PRIMARY KEY,
			title           TEXT          NOT NULL DEFAULT '',
			price           NUMERIC(10,2) NOT NULL DEFAULT 0,
			currency        VARCHAR(8)    NOT NULL DEFAULT 'EUR',
			location        TEXT          NOT NULL DEFAULT '',
			url             TEXT          UNIQUE NOT NULL,
			description     TEXT          NOT NULL DEFAULT '',
			posted_date     TEXT          NOT NULL DEFAULT '',
			seller_name     TEXT          NOT NULL DEFAULT '',
			contact_info    TEXT          NOT NULL DEFAULT '',
			category        TEXT          NOT NULL DEFAULT '',
			brand           TEXT          NOT NULL DEFAULT '',
			model           TEXT          NOT NULL DEFAULT '',
			condition       TEXT          NOT NULL DEFAULT '',
			reference_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			deal_score      NUMERIC(6,2)  NOT NULL DEFAULT 0,
			scraped_at      TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_listings_deal_score ON listings(deal_score);
		CREATE INDEX IF NOT EXISTS idx_listings_category   ON listings(category);
	`)
	return err
}

// Upsert inserts or replaces the stored record for the listing's URL.
func (ps *PostgresStore) Upsert(l *models.Listing, referencePrice, dealScore float64) error {
	_, err := ps.db.Exec(`
		INSERT INTO listings
			(title, price, currency, location, url, description, posted_date,
			 seller_name, contact_info, category, brand, model, condition,
			 reference_price, deal_score, scraped_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,NOW())
		ON CONFLICT (url) DO UPDATE SET
			title           = EXCLUDED.title,
			price           = EXCLUDED.price,
			currency        = EXCLUDED.currency,
			location        = EXCLUDED.location,
			description     = EXCLUDED.description,
			posted_date     = EXCLUDED.posted_date,
			seller_name     = EXCLUDED.seller_name,
			contact_info    = EXCLUDED.contact_info,
			category        = EXCLUDED.category,
			brand           = EXCLUDED.brand,
			model           = EXCLUDED.model,
			condition       = EXCLUDED.condition,
			reference_price = EXCLUDED.reference_price,
			deal_score      = EXCLUDED.deal_score,
			scraped_at      = NOW()
	`,
		l.Title, l.Price, l.Currency, l.Location, l.URL, l.Description,
		l.PostedDate, l.SellerName, l.ContactInfo, l.Category, l.Brand,
		l.Model, l.Condition, referencePrice, dealScore,
	)
	if err != nil {
		return fmt.Errorf("postgres: upsert %q: %w", l.URL, err)
	}
	return nil
}

// FetchAll retrieves all stored records ordered by deal score — used by the
// previous-results view.
func (ps *PostgresStore) FetchAll() ([]*Record, error) {
	rows, err := ps.db.Query(`
		SELECT title, price, currency, location, url, description, posted_date,
		       seller_name, contact_info, category, brand, model, condition,
		       reference_price, deal_score, scraped_at
		FROM listings
		ORDER BY deal_score DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		r := &Record{}
		if err := rows.Scan(
			&r.Listing.Title, &r.Listing.Price, &r.Listing.Currency,
			&r.Listing.Location, &r.Listing.URL, &r.Listing.Description,
			&r.Listing.PostedDate, &r.Listing.SellerName, &r.Listing.ContactInfo,
			&r.Listing.Category, &r.Listing.Brand, &r.Listing.Model,
			&r.Listing.Condition, &r.ReferencePrice, &r.DealScore, &r.ScrapedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close closes the database connection.
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
