package services

import (
  "context"
  "testing"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/darijacode/hub-backend/internal/apierr"
  "github.com/darijacode/hub-backend/internal/logger"
  "github.com/darijacode/hub-backend/internal/types"
)

func TestProgressPercent(t *testing.T) {
  cases := []struct {
    name      string
    completed int
    total     int
    want      int
  }{
    {"empty roadmap", 0, 0, 0},
    {"none done", 0, 4, 0},
    {"one of four", 1, 4, 25},
    {"two of four", 2, 4, 50},
    {"all done", 4, 4, 100},
    {"rounds up", 2, 3, 67},
    {"rounds down", 1, 3, 33},
    {"one of seven", 1, 7, 14},
    {"negative total", 0, -1, 0},
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      if got := ProgressPercent(tc.completed, tc.total); got != tc.want {
        t.Fatalf("ProgressPercent(%d, %d) = %d, want %d", tc.completed, tc.total, got, tc.want)
      }
    })
  }
}

func TestPercentFromSteps_CountsOnlyCompleted(t *testing.T) {
  steps := []*StepWithProgress{
    {RoadmapStep: &types.RoadmapStep{Title: "a"}, Status: types.StatusCompleted},
    {RoadmapStep: &types.RoadmapStep{Title: "b"}, Status: types.StatusInProgress},
    {RoadmapStep: &types.RoadmapStep{Title: "c"}, Status: types.StatusPending},
    {RoadmapStep: &types.RoadmapStep{Title: "d"}, Status: types.StatusCompleted},
  }
  if got := percentFromSteps(steps); got != 50 {
    t.Fatalf("expected 50, got %d", got)
  }
}

func TestPercentFromSteps_Empty(t *testing.T) {
  if got := percentFromSteps(nil); got != 0 {
    t.Fatalf("expected 0 for no steps, got %d", got)
  }
}

func TestValidStatus(t *testing.T) {
  for _, s := range []string{types.StatusPending, types.StatusInProgress, types.StatusCompleted} {
    if !validStatus(s) {
      t.Fatalf("%q should be valid", s)
    }
  }
  for _, s := range []string{"", "done", "COMPLETED", "skipped"} {
    if validStatus(s) {
      t.Fatalf("%q should be invalid", s)
    }
  }
}

type fakeStepRepo struct {
  steps map[uuid.UUID]*types.RoadmapStep
}

func (f *fakeStepRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.RoadmapStep) ([]*types.RoadmapStep, error) {
  return rows, nil
}

func (f *fakeStepRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.RoadmapStep, error) {
  var out []*types.RoadmapStep
  for _, id := range ids {
    if step, ok := f.steps[id]; ok {
      out = append(out, step)
    }
  }
  return out, nil
}

func (f *fakeStepRepo) GetByRoadmapID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) ([]*types.RoadmapStep, error) {
  return nil, nil
}

func (f *fakeStepRepo) UpdateOrderIndexes(ctx context.Context, tx *gorm.DB, order map[uuid.UUID]int) error {
  return nil
}

type progressKey struct {
  userID uuid.UUID
  stepID uuid.UUID
}

type fakeProgressRepo struct {
  rows    map[progressKey]*types.UserProgress
  upserts int
}

func (f *fakeProgressRepo) GetByUserAndStepIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, stepIDs []uuid.UUID) ([]*types.UserProgress, error) {
  var out []*types.UserProgress
  for _, id := range stepIDs {
    if row, ok := f.rows[progressKey{userID, id}]; ok {
      out = append(out, row)
    }
  }
  return out, nil
}

// Upsert mirrors the real repo: Where(user_id, step_id).Assign(status,
// notes).FirstOrCreate, so only status and notes change on an existing row.
func (f *fakeProgressRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.UserProgress) error {
  f.upserts++
  key := progressKey{row.UserID, row.StepID}
  if existing, ok := f.rows[key]; ok {
    existing.Status = row.Status
    existing.Notes = row.Notes
    return nil
  }
  stored := *row
  if stored.ID == uuid.Nil {
    stored.ID = uuid.New()
  }
  f.rows[key] = &stored
  return nil
}

func newProgressForTest(t *testing.T, stepRepo *fakeStepRepo, progressRepo *fakeProgressRepo) ProgressService {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("logger init: %v", err)
  }
  return NewProgressService(nil, log, nil, stepRepo, progressRepo)
}

func TestSetNotes_CarriesCurrentStatus(t *testing.T) {
  userID := uuid.New()
  stepID := uuid.New()
  stepRepo := &fakeStepRepo{steps: map[uuid.UUID]*types.RoadmapStep{
    stepID: {ID: stepID, Title: "s"},
  }}
  progressRepo := &fakeProgressRepo{rows: map[progressKey]*types.UserProgress{
    {userID, stepID}: {ID: uuid.New(), UserID: userID, StepID: stepID, Status: types.StatusCompleted},
  }}
  svc := newProgressForTest(t, stepRepo, progressRepo)

  if err := svc.SetNotes(context.Background(), userID, stepID, "remember pointers"); err != nil {
    t.Fatalf("set notes: %v", err)
  }
  row := progressRepo.rows[progressKey{userID, stepID}]
  if row.Status != types.StatusCompleted {
    t.Fatalf("notes update regressed status to %q", row.Status)
  }
  if row.Notes != "remember pointers" {
    t.Fatalf("notes not saved: %q", row.Notes)
  }
}

func TestSetNotes_NewRowDefaultsToPending(t *testing.T) {
  userID := uuid.New()
  stepID := uuid.New()
  stepRepo := &fakeStepRepo{steps: map[uuid.UUID]*types.RoadmapStep{
    stepID: {ID: stepID, Title: "s"},
  }}
  progressRepo := &fakeProgressRepo{rows: map[progressKey]*types.UserProgress{}}
  svc := newProgressForTest(t, stepRepo, progressRepo)

  if err := svc.SetNotes(context.Background(), userID, stepID, "first note"); err != nil {
    t.Fatalf("set notes: %v", err)
  }
  row := progressRepo.rows[progressKey{userID, stepID}]
  if row == nil || row.Status != types.StatusPending || row.Notes != "first note" {
    t.Fatalf("unexpected row: %+v", row)
  }
}

func TestSetStatus_PreservesExistingNotes(t *testing.T) {
  userID := uuid.New()
  stepID := uuid.New()
  stepRepo := &fakeStepRepo{steps: map[uuid.UUID]*types.RoadmapStep{
    stepID: {ID: stepID, Title: "s"},
  }}
  progressRepo := &fakeProgressRepo{rows: map[progressKey]*types.UserProgress{
    {userID, stepID}: {ID: uuid.New(), UserID: userID, StepID: stepID, Status: types.StatusPending, Notes: "keep me"},
  }}
  svc := newProgressForTest(t, stepRepo, progressRepo)

  if err := svc.SetStatus(context.Background(), userID, stepID, types.StatusInProgress); err != nil {
    t.Fatalf("set status: %v", err)
  }
  row := progressRepo.rows[progressKey{userID, stepID}]
  if row.Status != types.StatusInProgress {
    t.Fatalf("status not updated: %q", row.Status)
  }
  if row.Notes != "keep me" {
    t.Fatalf("status update clobbered notes: %q", row.Notes)
  }
}

func TestSetStatus_Idempotent(t *testing.T) {
  userID := uuid.New()
  stepID := uuid.New()
  stepRepo := &fakeStepRepo{steps: map[uuid.UUID]*types.RoadmapStep{
    stepID: {ID: stepID, Title: "s"},
  }}
  progressRepo := &fakeProgressRepo{rows: map[progressKey]*types.UserProgress{
    {userID, stepID}: {ID: uuid.New(), UserID: userID, StepID: stepID, Status: types.StatusPending, Notes: "n"},
  }}
  svc := newProgressForTest(t, stepRepo, progressRepo)

  if err := svc.SetStatus(context.Background(), userID, stepID, types.StatusCompleted); err != nil {
    t.Fatalf("first set status: %v", err)
  }
  first := *progressRepo.rows[progressKey{userID, stepID}]

  if err := svc.SetStatus(context.Background(), userID, stepID, types.StatusCompleted); err != nil {
    t.Fatalf("second set status: %v", err)
  }
  second := *progressRepo.rows[progressKey{userID, stepID}]

  if first != second {
    t.Fatalf("repeated call changed the row: %+v vs %+v", first, second)
  }
  if progressRepo.upserts != 2 {
    t.Fatalf("expected an upsert per call, got %d", progressRepo.upserts)
  }
}

func TestSetStatus_RejectsUnknownStatusAndStep(t *testing.T) {
  userID := uuid.New()
  stepID := uuid.New()
  stepRepo := &fakeStepRepo{steps: map[uuid.UUID]*types.RoadmapStep{
    stepID: {ID: stepID, Title: "s"},
  }}
  progressRepo := &fakeProgressRepo{rows: map[progressKey]*types.UserProgress{}}
  svc := newProgressForTest(t, stepRepo, progressRepo)

  if err := svc.SetStatus(context.Background(), userID, stepID, "done"); !apierr.Is(err, apierr.CodeInvalidInput) {
    t.Fatalf("expected invalid_input for unknown status, got %v", err)
  }
  if err := svc.SetStatus(context.Background(), userID, uuid.New(), types.StatusCompleted); !apierr.Is(err, apierr.CodeNotFound) {
    t.Fatalf("expected not_found for unknown step, got %v", err)
  }
  if len(progressRepo.rows) != 0 {
    t.Fatalf("rejected calls must not write rows")
  }
}
