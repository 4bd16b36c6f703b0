// Package repository records generated landing-page metadata for the athlete
// dashboard history view.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/prosport1/ProSport/internal/domain"
)

type ArtifactRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewArtifactRepository(db *sql.DB, logger *zap.Logger) *ArtifactRepository {
	return &ArtifactRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the artifact history table when it does not exist.
func (r *ArtifactRepository) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS landing_artifacts (
    id            TEXT PRIMARY KEY,
    tier          TEXT NOT NULL,
    sport         TEXT NOT NULL,
    athlete_name  TEXT NOT NULL,
    storage_path  TEXT NOT NULL,
    public_url    TEXT NOT NULL,
    used_fallback BOOLEAN NOT NULL,
    variant_id    INTEGER NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure landing_artifacts schema: %w", err)
	}
	return nil
}

func (r *ArtifactRepository) Record(ctx context.Context, a *domain.Artifact) error {
	const query = `
INSERT INTO landing_artifacts
    (id, tier, sport, athlete_name, storage_path, public_url, used_fallback, variant_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, string(a.Tier), a.Sport, a.AthleteName,
		a.StoragePath, a.PublicURL, a.UsedFallback, a.VariantID, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record artifact %s: %w", a.ID, err)
	}

	r.logger.Debug("Artifact recorded", zap.String("id", a.ID))
	return nil
}

func (r *ArtifactRepository) Recent(ctx context.Context, limit int) ([]*domain.Artifact, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	const query = `
SELECT id, tier, sport, athlete_name, storage_path, public_url, used_fallback, variant_id, created_at
FROM landing_artifacts
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent artifacts: %w", err)
	}
	defer rows.Close()

	artifacts := make([]*domain.Artifact, 0, limit)
	for rows.Next() {
		var a domain.Artifact
		var tier string
		if err := rows.Scan(&a.ID, &tier, &a.Sport, &a.AthleteName,
			&a.StoragePath, &a.PublicURL, &a.UsedFallback, &a.VariantID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan artifact row: %w", err)
		}
		a.Tier = domain.Tier(tier)
		artifacts = append(artifacts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate artifact rows: %w", err)
	}

	return artifacts, nil
}
