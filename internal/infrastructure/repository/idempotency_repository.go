package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	domainRepo "github.com/sangkips/gestao-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type idempotencyRepository struct {
	db    *gorm.DB
	store recordStore[entity.IdempotencyKey]
}

// NewIdempotencyRepository creates a new idempotency repository
func NewIdempotencyRepository(db *gorm.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db, store: newRecordStore[entity.IdempotencyKey](db, "Idempotency key")}
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	return r.store.first(ctx, nil, "key = ? AND user_id = ? AND expires_at > ?", key, userID, time.Now())
}

// Reserve relies on the (key, user_id) unique index: of two concurrent
// inserts exactly one affects a row.
func (r *idempotencyRepository) Reserve(ctx context.Context, ikey *entity.IdempotencyKey) (bool, error) {
	if ikey.ID == uuid.Nil {
		ikey.ID = uuid.New()
	}
	reserved := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// an expired row would otherwise hold the index slot until the janitor runs
		err := tx.Where("key = ? AND user_id = ? AND expires_at <= ?", ikey.Key, ikey.UserID, time.Now()).
			Delete(&entity.IdempotencyKey{}).Error
		if err != nil {
			return err
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(ikey)
		if result.Error != nil {
			return result.Error
		}
		reserved = result.RowsAffected == 1
		return nil
	})
	if err != nil {
		return false, r.store.wrap("reserve", err)
	}
	return reserved, nil
}

func (r *idempotencyRepository) Complete(ctx context.Context, id uuid.UUID, code int, body string) error {
	err := r.db.WithContext(ctx).Model(&entity.IdempotencyKey{}).
		Where("id = ?", id).
		Updates(map[string]any{"response_code": code, "response_body": body}).Error
	return r.store.wrap("update", err)
}

func (r *idempotencyRepository) Release(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&entity.IdempotencyKey{}, "id = ?", id).Error
	return r.store.wrap("delete", err)
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&entity.IdempotencyKey{})
	if result.Error != nil {
		return 0, r.store.wrap("delete", result.Error)
	}
	return result.RowsAffected, nil
}
