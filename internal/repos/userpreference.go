package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/darijacode/hub-backend/internal/logger"
  "github.com/darijacode/hub-backend/internal/types"
)

type UserPreferenceRepo interface {
  GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.UserPreference, error)
  Upsert(ctx context.Context, tx *gorm.DB, row *types.UserPreference) error
}

type userPreferenceRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserPreferenceRepo(db *gorm.DB, baseLog *logger.Logger) UserPreferenceRepo {
  repoLog := baseLog.With("repo", "UserPreferenceRepo")
  return &userPreferenceRepo{db: db, log: repoLog}
}

func (r *userPreferenceRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.UserPreference, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.UserPreference
  if len(userIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id IN ?", userIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// Upsert is keyed on the unique user_id.
func (r *userPreferenceRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.UserPreference) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id = ?", row.UserID).
    Assign(map[string]any{
      "language": row.Language,
      "theme":    row.Theme,
    }).
    FirstOrCreate(row).Error; err != nil {
    return err
  }
  return nil
}
