package services

import (
  "context"
  "fmt"

  "github.com/darijacode/hub-backend/internal/apierr"
  "github.com/darijacode/hub-backend/internal/logger"
  "github.com/darijacode/hub-backend/internal/repos"
  "github.com/darijacode/hub-backend/internal/types"
)

type LearningPathService interface {
  List(ctx context.Context) ([]*types.LearningPath, error)
}

type learningPathService struct {
  log      *logger.Logger
  pathRepo repos.LearningPathRepo
}

func NewLearningPathService(baseLog *logger.Logger, pathRepo repos.LearningPathRepo) LearningPathService {
  return &learningPathService{
    log:      baseLog.With("service", "LearningPathService"),
    pathRepo: pathRepo,
  }
}

func (s *learningPathService) List(ctx context.Context) ([]*types.LearningPath, error) {
  paths, err := s.pathRepo.List(ctx, nil)
  if err != nil {
    s.log.Error("Failed to list learning paths", "error", err)
    return nil, apierr.PersistenceFailure(fmt.Errorf("list learning paths: %w", err))
  }
  return paths, nil
}
