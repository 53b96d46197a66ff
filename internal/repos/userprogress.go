package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/darijacode/hub-backend/internal/logger"
  "github.com/darijacode/hub-backend/internal/types"
)

type UserProgressRepo interface {
  GetByUserAndStepIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, stepIDs []uuid.UUID) ([]*types.UserProgress, error)
  Upsert(ctx context.Context, tx *gorm.DB, row *types.UserProgress) error
}

type userProgressRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserProgressRepo(db *gorm.DB, baseLog *logger.Logger) UserProgressRepo {
  repoLog := baseLog.With("repo", "UserProgressRepo")
  return &userProgressRepo{db: db, log: repoLog}
}

func (r *userProgressRepo) GetByUserAndStepIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, stepIDs []uuid.UUID) ([]*types.UserProgress, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.UserProgress
  if userID == uuid.Nil || len(stepIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND step_id IN ?", userID, stepIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// Upsert is keyed on the unique (user_id, step_id) pair. Last write wins.
func (r *userProgressRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.UserProgress) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND step_id = ?", row.UserID, row.StepID).
    Assign(map[string]any{
      "status": row.Status,
      "notes":  row.Notes,
    }).
    FirstOrCreate(row).Error; err != nil {
    return err
  }
  return nil
}
