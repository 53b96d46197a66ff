package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/darijacode/hub-backend/internal/logger"
  "github.com/darijacode/hub-backend/internal/types"
)

type LearningPathRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rows []*types.LearningPath) ([]*types.LearningPath, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.LearningPath, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.LearningPath, error)
}

type learningPathRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewLearningPathRepo(db *gorm.DB, baseLog *logger.Logger) LearningPathRepo {
  repoLog := baseLog.With("repo", "LearningPathRepo")
  return &learningPathRepo{db: db, log: repoLog}
}

func (r *learningPathRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.LearningPath) ([]*types.LearningPath, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.LearningPath{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (r *learningPathRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.LearningPath, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.LearningPath
  if len(ids) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ids).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *learningPathRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.LearningPath, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.LearningPath
  if err := transaction.WithContext(ctx).
    Order("name ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
