package repos

import (
  "context"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/darijacode/hub-backend/internal/logger"
  "github.com/darijacode/hub-backend/internal/types"
)

type RoadmapStepRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rows []*types.RoadmapStep) ([]*types.RoadmapStep, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.RoadmapStep, error)
  GetByRoadmapID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) ([]*types.RoadmapStep, error)
  UpdateOrderIndexes(ctx context.Context, tx *gorm.DB, order map[uuid.UUID]int) error
}

type roadmapStepRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewRoadmapStepRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapStepRepo {
  repoLog := baseLog.With("repo", "RoadmapStepRepo")
  return &roadmapStepRepo{db: db, log: repoLog}
}

func (r *roadmapStepRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.RoadmapStep) ([]*types.RoadmapStep, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.RoadmapStep{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (r *roadmapStepRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.RoadmapStep, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.RoadmapStep
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

func (r *roadmapStepRepo) GetByRoadmapID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) ([]*types.RoadmapStep, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.RoadmapStep
  if roadmapID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("roadmap_id = ?", roadmapID).
    Order("order_index ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// UpdateOrderIndexes renumbers the given steps. Callers wrap this in a
// transaction so the roadmap never observes a gap in order_index.
func (r *roadmapStepRepo) UpdateOrderIndexes(ctx context.Context, tx *gorm.DB, order map[uuid.UUID]int) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  for id, idx := range order {
    if err := transaction.WithContext(ctx).
      Model(&types.RoadmapStep{}).
      Where("id = ?", id).
      Updates(map[string]any{
        "order_index": idx,
        "updated_at":  time.Now(),
      }).Error; err != nil {
      return err
    }
  }
  return nil
}
