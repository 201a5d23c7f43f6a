package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khaledkhbro/microjob-backend/internal/apperrors"
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	portsrepo "github.com/khaledkhbro/microjob-backend/internal/core/ports/repositories"
)

const (
	settingKeyFeePolicy      = "fee_policy"
	settingKeyRevisionPolicy = "revision_policy"
	settingKeyApprovalPolicy = "approval_policy"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for platform settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// loadSetting fetches the newest version of a setting key and unmarshals its
// JSON value into dest.
func (r *PgxSettingsRepository) loadSetting(ctx context.Context, key string, dest interface{}) error {
	query := `
		SELECT value FROM platform_settings
		WHERE setting_key = $1
		ORDER BY version DESC
		LIMIT 1;
	`
	var value []byte
	err := r.Pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to load setting "+key, err)
	}
	if err := json.Unmarshal(value, dest); err != nil {
		return apperrors.NewAppError(500, "failed to decode setting "+key, err)
	}
	return nil
}

// saveSetting inserts the next version of a setting key. Versions are
// append-only; concurrent writers retry on version collision.
func (r *PgxSettingsRepository) saveSetting(ctx context.Context, key string, value interface{}, updatedBy string) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode setting "+key, err)
	}
	query := `
		INSERT INTO platform_settings (setting_key, version, value, updated_by, updated_at)
		SELECT $1, COALESCE(MAX(version), 0) + 1, $2, $3, $4
		FROM platform_settings WHERE setting_key = $1;
	`
	const maxAttempts = 3
	for attempt := 0; attempt < maxAttempts; attempt++ {
		_, err = r.Pool.Exec(ctx, query, key, payload, updatedBy, time.Now())
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return apperrors.NewAppError(500, "failed to save setting "+key, err)
		}
	}
	return apperrors.NewAppError(500, "failed to save setting "+key+" after retries", err)
}

func (r *PgxSettingsRepository) GetFeePolicy(ctx context.Context) (*domain.FeePolicy, error) {
	var policy domain.FeePolicy
	if err := r.loadSetting(ctx, settingKeyFeePolicy, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

func (r *PgxSettingsRepository) GetRevisionPolicy(ctx context.Context) (*domain.RevisionPolicy, error) {
	var policy domain.RevisionPolicy
	if err := r.loadSetting(ctx, settingKeyRevisionPolicy, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

func (r *PgxSettingsRepository) GetApprovalPolicy(ctx context.Context) (*domain.ApprovalPolicy, error) {
	var policy domain.ApprovalPolicy
	if err := r.loadSetting(ctx, settingKeyApprovalPolicy, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

func (r *PgxSettingsRepository) SaveFeePolicy(ctx context.Context, policy domain.FeePolicy, updatedBy string) error {
	return r.saveSetting(ctx, settingKeyFeePolicy, policy, updatedBy)
}

func (r *PgxSettingsRepository) SaveRevisionPolicy(ctx context.Context, policy domain.RevisionPolicy, updatedBy string) error {
	return r.saveSetting(ctx, settingKeyRevisionPolicy, policy, updatedBy)
}

func (r *PgxSettingsRepository) SaveApprovalPolicy(ctx context.Context, policy domain.ApprovalPolicy, updatedBy string) error {
	return r.saveSetting(ctx, settingKeyApprovalPolicy, policy, updatedBy)
}
