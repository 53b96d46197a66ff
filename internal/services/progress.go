package services

import (
  "context"
  "fmt"
  "math"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/darijacode/hub-backend/internal/apierr"
  "github.com/darijacode/hub-backend/internal/logger"
  "github.com/darijacode/hub-backend/internal/repos"
  "github.com/darijacode/hub-backend/internal/types"
)

// StepWithProgress is a roadmap step merged with the caller's progress row.
// Steps without a row read as pending with empty notes.
type StepWithProgress struct {
  *types.RoadmapStep
  Status string `json:"status"`
  Notes  string `json:"notes"`
}

type ProgressOverview struct {
  Roadmap *types.Roadmap      `json:"roadmap"`
  Steps   []*StepWithProgress `json:"steps"`
  Percent int                 `json:"percent"`
}

type ProgressService interface {
  Overview(ctx context.Context, userID, roadmapID uuid.UUID) (*ProgressOverview, error)
  SetStatus(ctx context.Context, userID, stepID uuid.UUID, status string) error
  SetNotes(ctx context.Context, userID, stepID uuid.UUID, notes string) error
}

type progressService struct {
  db           *gorm.DB
  log          *logger.Logger
  roadmapSvc   RoadmapService
  stepRepo     repos.RoadmapStepRepo
  progressRepo repos.UserProgressRepo
}

func NewProgressService(
  db *gorm.DB,
  baseLog *logger.Logger,
  roadmapSvc RoadmapService,
  stepRepo repos.RoadmapStepRepo,
  progressRepo repos.UserProgressRepo,
) ProgressService {
  return &progressService{
    db:           db,
    log:          baseLog.With("service", "ProgressService"),
    roadmapSvc:   roadmapSvc,
    stepRepo:     stepRepo,
    progressRepo: progressRepo,
  }
}

// ProgressPercent is the aggregate completion percentage, rounded to the
// nearest integer. An empty step list is 0, not NaN. The value is always
// derived from current statuses and never stored.
func ProgressPercent(completed, total int) int {
  if total <= 0 {
    return 0
  }
  return int(math.Round(100 * float64(completed) / float64(total)))
}

func percentFromSteps(steps []*StepWithProgress) int {
  completed := 0
  for _, step := range steps {
    if step.Status == types.StatusCompleted {
      completed++
    }
  }
  return ProgressPercent(completed, len(steps))
}

// Overview is also the rollback path for clients: after a failed optimistic
// update they re-fetch the authoritative merged list instead of guessing
// the prior value.
func (s *progressService) Overview(ctx context.Context, userID, roadmapID uuid.UUID) (*ProgressOverview, error) {
  roadmap, steps, err := s.roadmapSvc.GetWithSteps(ctx, userID, roadmapID)
  if err != nil {
    return nil, err
  }

  stepIDs := make([]uuid.UUID, 0, len(steps))
  for _, step := range steps {
    stepIDs = append(stepIDs, step.ID)
  }
  rows, err := s.progressRepo.GetByUserAndStepIDs(ctx, nil, userID, stepIDs)
  if err != nil {
    return nil, apierr.PersistenceFailure(fmt.Errorf("load progress: %w", err))
  }
  byStep := make(map[uuid.UUID]*types.UserProgress, len(rows))
  for _, row := range rows {
    if row != nil {
      byStep[row.StepID] = row
    }
  }

  merged := make([]*StepWithProgress, 0, len(steps))
  for _, step := range steps {
    sp := &StepWithProgress{RoadmapStep: step, Status: types.StatusPending}
    if row, ok := byStep[step.ID]; ok {
      sp.Status = row.Status
      sp.Notes = row.Notes
    }
    merged = append(merged, sp)
  }

  return &ProgressOverview{
    Roadmap: roadmap,
    Steps:   merged,
    Percent: percentFromSteps(merged),
  }, nil
}

func validStatus(status string) bool {
  switch status {
  case types.StatusPending, types.StatusInProgress, types.StatusCompleted:
    return true
  }
  return false
}

// SetStatus upserts the (user, step) row with the new status, preserving
// any notes already stored. Repeating the same call is a no-op in effect.
func (s *progressService) SetStatus(ctx context.Context, userID, stepID uuid.UUID, status string) error {
  if userID == uuid.Nil {
    return apierr.AuthRequired(fmt.Errorf("sign in to track progress"))
  }
  if !validStatus(status) {
    return apierr.InvalidInput(fmt.Errorf("unknown status %q", status))
  }

  existing, err := s.existingRow(ctx, userID, stepID)
  if err != nil {
    return err
  }
  row := &types.UserProgress{
    UserID: userID,
    StepID: stepID,
    Status: status,
  }
  if existing != nil {
    row.Notes = existing.Notes
  }
  if err := s.progressRepo.Upsert(ctx, nil, row); err != nil {
    s.log.Error("Failed to save step status", "user_id", userID, "step_id", stepID, "error", err)
    return apierr.PersistenceFailure(fmt.Errorf("save progress: %w", err))
  }
  return nil
}

// SetNotes upserts the notes, carrying the step's current status so a notes
// update can never regress status.
func (s *progressService) SetNotes(ctx context.Context, userID, stepID uuid.UUID, notes string) error {
  if userID == uuid.Nil {
    return apierr.AuthRequired(fmt.Errorf("sign in to track progress"))
  }

  existing, err := s.existingRow(ctx, userID, stepID)
  if err != nil {
    return err
  }
  row := &types.UserProgress{
    UserID: userID,
    StepID: stepID,
    Status: types.StatusPending,
    Notes:  notes,
  }
  if existing != nil {
    row.Status = existing.Status
  }
  if err := s.progressRepo.Upsert(ctx, nil, row); err != nil {
    s.log.Error("Failed to save step notes", "user_id", userID, "step_id", stepID, "error", err)
    return apierr.PersistenceFailure(fmt.Errorf("save notes: %w", err))
  }
  return nil
}

func (s *progressService) existingRow(ctx context.Context, userID, stepID uuid.UUID) (*types.UserProgress, error) {
  steps, err := s.stepRepo.GetByIDs(ctx, nil, []uuid.UUID{stepID})
  if err != nil {
    return nil, apierr.PersistenceFailure(fmt.Errorf("load step: %w", err))
  }
  if len(steps) == 0 || steps[0] == nil {
    return nil, apierr.NotFound(fmt.Errorf("step not found"))
  }
  rows, err := s.progressRepo.GetByUserAndStepIDs(ctx, nil, userID, []uuid.UUID{stepID})
  if err != nil {
    return nil, apierr.PersistenceFailure(fmt.Errorf("load progress: %w", err))
  }
  if len(rows) == 0 {
    return nil, nil
  }
  return rows[0], nil
}
