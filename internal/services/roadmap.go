package services

import (
  "context"
  "encoding/json"
  "fmt"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/darijacode/hub-backend/internal/apierr"
  "github.com/darijacode/hub-backend/internal/logger"
  "github.com/darijacode/hub-backend/internal/repos"
  "github.com/darijacode/hub-backend/internal/sanitize"
  "github.com/darijacode/hub-backend/internal/types"
)

type SaveDraftRequest struct {
  PathID   uuid.UUID           `json:"path_id"`
  Level    string              `json:"level"`
  Language string              `json:"language"`
  Draft    *types.DraftRoadmap `json:"draft"`
}

type RoadmapService interface {
  SaveDraft(ctx context.Context, userID uuid.UUID, req SaveDraftRequest) (*types.Roadmap, error)
  GetWithSteps(ctx context.Context, userID, roadmapID uuid.UUID) (*types.Roadmap, []*types.RoadmapStep, error)
  ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.Roadmap, error)
  ReorderSteps(ctx context.Context, userID, roadmapID uuid.UUID, orderedStepIDs []uuid.UUID) error
  Delete(ctx context.Context, userID, roadmapID uuid.UUID) error
}

type roadmapService struct {
  db       *gorm.DB
  log      *logger.Logger
  pathRepo repos.LearningPathRepo
  roadRepo repos.RoadmapRepo
  stepRepo repos.RoadmapStepRepo
}

func NewRoadmapService(
  db *gorm.DB,
  baseLog *logger.Logger,
  pathRepo repos.LearningPathRepo,
  roadRepo repos.RoadmapRepo,
  stepRepo repos.RoadmapStepRepo,
) RoadmapService {
  return &roadmapService{
    db:       db,
    log:      baseLog.With("service", "RoadmapService"),
    pathRepo: pathRepo,
    roadRepo: roadRepo,
    stepRepo: stepRepo,
  }
}

// SaveDraft converts a draft into a persisted roadmap plus its steps. The
// header and the step batch are written inside one transaction, so a failed
// step insert rolls the header back and a headerless retry is never needed.
func (s *roadmapService) SaveDraft(ctx context.Context, userID uuid.UUID, req SaveDraftRequest) (*types.Roadmap, error) {
  if userID == uuid.Nil {
    return nil, apierr.AuthRequired(fmt.Errorf("sign in to save a roadmap"))
  }
  if req.Draft == nil || len(req.Draft.Steps) == 0 {
    return nil, apierr.NothingToSave(fmt.Errorf("draft has no steps"))
  }

  paths, err := s.pathRepo.GetByIDs(ctx, nil, []uuid.UUID{req.PathID})
  if err != nil {
    return nil, apierr.PersistenceFailure(fmt.Errorf("load learning path: %w", err))
  }
  if len(paths) == 0 || paths[0] == nil {
    return nil, apierr.InvalidInput(fmt.Errorf("unknown learning path"))
  }

  // The client may have edited the draft by hand, so strip again on the way
  // in; generated drafts are already clean and pass through unchanged.
  roadmap := &types.Roadmap{
    ID:          uuid.New(),
    UserID:      userID,
    PathID:      req.PathID,
    Title:       sanitize.Strip(req.Draft.Title),
    Description: sanitize.Strip(req.Draft.Description),
    Level:       req.Level,
    Language:    req.Language,
    AIGenerated: true,
  }

  err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, err := s.roadRepo.Create(ctx, tx, []*types.Roadmap{roadmap}); err != nil {
      return fmt.Errorf("create roadmap: %w", err)
    }
    steps := stepsForInsert(roadmap.ID, req.Draft)
    if _, err := s.stepRepo.Create(ctx, tx, steps); err != nil {
      return fmt.Errorf("create roadmap steps: %w", err)
    }
    return nil
  })
  if err != nil {
    s.log.Error("Failed to save roadmap", "user_id", userID, "error", err)
    return nil, apierr.PersistenceFailure(err)
  }
  return roadmap, nil
}

// stepsForInsert maps draft steps to rows. order_index is the step's
// position in the draft array, 0-based and contiguous, regardless of any
// index carried by the draft.
func stepsForInsert(roadmapID uuid.UUID, draft *types.DraftRoadmap) []*types.RoadmapStep {
  rows := make([]*types.RoadmapStep, 0, len(draft.Steps))
  for i, step := range draft.Steps {
    rows = append(rows, &types.RoadmapStep{
      ID:            uuid.New(),
      RoadmapID:     roadmapID,
      Title:         sanitize.Strip(step.Title),
      Description:   sanitize.Strip(step.Description),
      OrderIndex:    i,
      EstimatedTime: step.EstimatedTime,
      Keywords:      keywordsJSON(step.Keywords),
    })
  }
  return rows
}

func keywordsJSON(keywords []string) datatypes.JSON {
  if keywords == nil {
    keywords = []string{}
  }
  b, _ := json.Marshal(keywords)
  return datatypes.JSON(b)
}

func (s *roadmapService) GetWithSteps(ctx context.Context, userID, roadmapID uuid.UUID) (*types.Roadmap, []*types.RoadmapStep, error) {
  roadmaps, err := s.roadRepo.GetByIDs(ctx, nil, []uuid.UUID{roadmapID})
  if err != nil {
    return nil, nil, apierr.PersistenceFailure(fmt.Errorf("load roadmap: %w", err))
  }
  if len(roadmaps) == 0 || roadmaps[0] == nil {
    return nil, nil, apierr.NotFound(fmt.Errorf("roadmap not found"))
  }
  roadmap := roadmaps[0]
  if roadmap.UserID != userID {
    return nil, nil, apierr.NotFound(fmt.Errorf("roadmap not found"))
  }

  steps, err := s.stepRepo.GetByRoadmapID(ctx, nil, roadmapID)
  if err != nil {
    return nil, nil, apierr.PersistenceFailure(fmt.Errorf("load roadmap steps: %w", err))
  }
  return roadmap, steps, nil
}

func (s *roadmapService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.Roadmap, error) {
  if userID == uuid.Nil {
    return nil, apierr.AuthRequired(fmt.Errorf("sign in to list roadmaps"))
  }
  roadmaps, err := s.roadRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    return nil, apierr.PersistenceFailure(fmt.Errorf("list roadmaps: %w", err))
  }
  return roadmaps, nil
}

// ReorderSteps renumbers the steps of a roadmap to match orderedStepIDs.
// The set of ids must be exactly the roadmap's steps; all rows are updated
// in one transaction so order_index stays contiguous.
func (s *roadmapService) ReorderSteps(ctx context.Context, userID, roadmapID uuid.UUID, orderedStepIDs []uuid.UUID) error {
  roadmap, steps, err := s.GetWithSteps(ctx, userID, roadmapID)
  if err != nil {
    return err
  }
  if len(orderedStepIDs) != len(steps) {
    return apierr.InvalidInput(fmt.Errorf("reorder must include all %d steps", len(steps)))
  }

  existing := make(map[uuid.UUID]bool, len(steps))
  for _, step := range steps {
    existing[step.ID] = true
  }
  order := make(map[uuid.UUID]int, len(orderedStepIDs))
  for i, id := range orderedStepIDs {
    if !existing[id] {
      return apierr.InvalidInput(fmt.Errorf("step %s does not belong to roadmap %s", id, roadmap.ID))
    }
    if _, dup := order[id]; dup {
      return apierr.InvalidInput(fmt.Errorf("step %s listed twice", id))
    }
    order[id] = i
  }

  err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return s.stepRepo.UpdateOrderIndexes(ctx, tx, order)
  })
  if err != nil {
    return apierr.PersistenceFailure(fmt.Errorf("reorder steps: %w", err))
  }
  return nil
}

// Delete removes a roadmap and, through the FK cascade, its steps and any
// progress rows pointing at them. Ownership is enforced the same way as
// reads: a foreign roadmap reports not_found.
func (s *roadmapService) Delete(ctx context.Context, userID, roadmapID uuid.UUID) error {
  roadmaps, err := s.roadRepo.GetByIDs(ctx, nil, []uuid.UUID{roadmapID})
  if err != nil {
    return apierr.PersistenceFailure(fmt.Errorf("load roadmap: %w", err))
  }
  if len(roadmaps) == 0 || roadmaps[0] == nil || roadmaps[0].UserID != userID {
    return apierr.NotFound(fmt.Errorf("roadmap not found"))
  }
  if err := s.roadRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{roadmapID}); err != nil {
    s.log.Error("Failed to delete roadmap", "roadmap_id", roadmapID, "error", err)
    return apierr.PersistenceFailure(fmt.Errorf("delete roadmap: %w", err))
  }
  return nil
}
