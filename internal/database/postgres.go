package database

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/b1aiirrr/KaziLink/internal/models"
)

type PostgresDb struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, uri string) (*PostgresDb, error) {
	pgxconfig, err := pgxpool.ParseConfig(uri)
	if err != nil {
		return nil, fmt.Errorf("parsing db uri: %w", err)
	}

	db, err := pgxpool.ConnectConfig(ctx, pgxconfig)
	if err != nil {
		return nil, fmt.Errorf("connecting postgres: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	return &PostgresDb{db: db}, nil
}

func (p *PostgresDb) Close() {
	p.db.Close()
}

// SearchOpportunities runs one listing page read for the given filter.
func (p *PostgresDb) SearchOpportunities(ctx context.Context, f ListingFilter) ([]models.Opportunity, error) {
	query, args := BuildListingQuery(f)
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opportunities []models.Opportunity
	if err := pgxscan.ScanAll(&opportunities, rows); err != nil {
		return nil, err
	}

	return opportunities, nil
}

const insertOpportunitySQL = `INSERT INTO opportunities
	(title, company, type, description, requirements, location, salary_range,
	 application_deadline, source_url, source_platform, status,
	 experience_required, education_level, is_remote, industry)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

// InsertOpportunities inserts every record as-is in one transaction. No
// uniqueness check: the seed route calls this and duplicates on repeat
// invocations.
func (p *PostgresDb) InsertOpportunities(ctx context.Context, opportunities []models.Opportunity) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, o := range opportunities {
		if _, err := tx.Exec(ctx, insertOpportunitySQL,
			o.Title, o.Company, o.Type, o.Description, o.Requirements, o.Location,
			o.SalaryRange, o.ApplicationDeadline, o.SourceURL, o.SourcePlatform,
			o.Status, o.ExperienceRequired, o.EducationLevel, o.IsRemote, o.Industry,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// InsertOpportunityIfNew inserts one record unless a row with the same
// source_url already exists. Returns true when a row was inserted. Used by
// the ingestion pipeline to skip already-scraped listings.
func (p *PostgresDb) InsertOpportunityIfNew(ctx context.Context, o models.Opportunity) (bool, error) {
	tag, err := p.db.Exec(ctx, `INSERT INTO opportunities
		(title, company, type, description, requirements, location, salary_range,
		 application_deadline, source_url, source_platform, status,
		 experience_required, education_level, is_remote, industry)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		WHERE NOT EXISTS (
		  SELECT 1 FROM opportunities WHERE source_url = $9
		)`,
		o.Title, o.Company, o.Type, o.Description, o.Requirements, o.Location,
		o.SalaryRange, o.ApplicationDeadline, o.SourceURL, o.SourcePlatform,
		o.Status, o.ExperienceRequired, o.EducationLevel, o.IsRemote, o.Industry,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (p *PostgresDb) RegisterUser(ctx context.Context, user models.User) error {
	_, err := p.db.Exec(ctx, "INSERT INTO users (email, password, email_confirmed) VALUES ($1, $2, $3)",
		user.Email, user.Password, user.EmailConfirmed)
	return err
}

func (p *PostgresDb) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	rows, err := p.db.Query(ctx, "SELECT id, email, password, email_confirmed, created_at FROM users WHERE email = $1", email)
	if err != nil {
		return models.User{}, err
	}
	defer rows.Close()

	var user models.User
	if err := pgxscan.ScanOne(&user, rows); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (p *PostgresDb) ExistsEmail(ctx context.Context, email string) (bool, error) {
	rows, err := p.db.Query(ctx, "SELECT count(*) FROM users WHERE email = $1", email)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	var a int
	if err := pgxscan.ScanOne(&a, rows); err != nil {
		return false, err
	}

	return a != 0, nil
}
