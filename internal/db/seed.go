package db

import (
  "github.com/darijacode/hub-backend/internal/types"
)

var initialLearningPaths = []types.LearningPath{
  {Name: "Web Development", Description: "Learn how to create websites and web applications", Icon: "code"},
  {Name: "Mobile Development", Description: "Learn how to create mobile applications", Icon: "smartphone"},
  {Name: "Data Science", Description: "Learn how to analyze and visualize data", Icon: "database"},
  {Name: "Artificial Intelligence", Description: "Learn about machine learning and AI concepts", Icon: "brain"},
  {Name: "Blockchain", Description: "Learn about blockchain technology and cryptocurrencies", Icon: "link"},
}

// SeedLearningPaths inserts the initial learning paths if the table is empty.
func (s *PostgresService) SeedLearningPaths() error {
  var count int64
  if err := s.db.Model(&types.LearningPath{}).Count(&count).Error; err != nil {
    s.log.Error("Failed to count learning paths", "error", err)
    return err
  }
  if count > 0 {
    s.log.Debug("Learning paths already exist, skipping seed", "count", count)
    return nil
  }
  paths := make([]types.LearningPath, len(initialLearningPaths))
  copy(paths, initialLearningPaths)
  if err := s.db.Create(&paths).Error; err != nil {
    s.log.Error("Failed to seed learning paths", "error", err)
    return err
  }
  s.log.Info("Seeded learning paths", "count", len(paths))
  return nil
}
