package services

import (
  "context"
  "fmt"
  "strings"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/darijacode/hub-backend/internal/apierr"
  "github.com/darijacode/hub-backend/internal/i18n"
  "github.com/darijacode/hub-backend/internal/logger"
  "github.com/darijacode/hub-backend/internal/repos"
  "github.com/darijacode/hub-backend/internal/types"
)

type UpdateProfileRequest struct {
  Username  *string `json:"username"`
  FullName  *string `json:"fullName"`
  AvatarURL *string `json:"avatarUrl"`
  Bio       *string `json:"bio"`
}

type SavePreferencesRequest struct {
  Language string `json:"language"`
  Theme    string `json:"theme"`
}

type UserService interface {
  GetMe(ctx context.Context, userID uuid.UUID) (*types.User, *types.Profile, error)
  UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*types.Profile, error)
  GetPreferences(ctx context.Context, userID uuid.UUID) (*types.UserPreference, error)
  SavePreferences(ctx context.Context, userID uuid.UUID, req *SavePreferencesRequest) (*types.UserPreference, error)
}

type userService struct {
  db       *gorm.DB
  log      *logger.Logger
  userRepo repos.UserRepo
  profRepo repos.ProfileRepo
  prefRepo repos.UserPreferenceRepo
}

func NewUserService(
  db *gorm.DB,
  baseLog *logger.Logger,
  userRepo repos.UserRepo,
  profRepo repos.ProfileRepo,
  prefRepo repos.UserPreferenceRepo,
) UserService {
  return &userService{
    db:       db,
    log:      baseLog.With("service", "UserService"),
    userRepo: userRepo,
    profRepo: profRepo,
    prefRepo: prefRepo,
  }
}

func (s *userService) GetMe(ctx context.Context, userID uuid.UUID) (*types.User, *types.Profile, error) {
  if userID == uuid.Nil {
    return nil, nil, apierr.AuthRequired(fmt.Errorf("no authenticated user"))
  }
  users, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
  if err != nil {
    return nil, nil, apierr.PersistenceFailure(fmt.Errorf("load user: %w", err))
  }
  if len(users) == 0 {
    return nil, nil, apierr.NotFound(fmt.Errorf("user not found"))
  }
  profiles, err := s.profRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
  if err != nil {
    return nil, nil, apierr.PersistenceFailure(fmt.Errorf("load profile: %w", err))
  }
  var profile *types.Profile
  if len(profiles) > 0 {
    profile = profiles[0]
  }
  return users[0], profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*types.Profile, error) {
  if userID == uuid.Nil {
    return nil, apierr.AuthRequired(fmt.Errorf("no authenticated user"))
  }
  if req == nil {
    return nil, apierr.InvalidInput(fmt.Errorf("empty profile update"))
  }
  fields := map[string]any{}
  if req.Username != nil {
    fields["username"] = strings.TrimSpace(*req.Username)
  }
  if req.FullName != nil {
    fields["full_name"] = strings.TrimSpace(*req.FullName)
  }
  if req.AvatarURL != nil {
    fields["avatar_url"] = strings.TrimSpace(*req.AvatarURL)
  }
  if req.Bio != nil {
    fields["bio"] = *req.Bio
  }
  if len(fields) == 0 {
    return nil, apierr.InvalidInput(fmt.Errorf("no profile fields to update"))
  }
  if err := s.profRepo.UpdateFields(ctx, nil, userID, fields); err != nil {
    s.log.Error("Failed to update profile", "user_id", userID, "error", err)
    return nil, apierr.PersistenceFailure(fmt.Errorf("update profile: %w", err))
  }
  profiles, err := s.profRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
  if err != nil {
    return nil, apierr.PersistenceFailure(fmt.Errorf("reload profile: %w", err))
  }
  if len(profiles) == 0 {
    return nil, apierr.NotFound(fmt.Errorf("profile not found"))
  }
  return profiles[0], nil
}

// GetPreferences returns defaults for users that never saved any, so callers
// always get a usable language and theme.
func (s *userService) GetPreferences(ctx context.Context, userID uuid.UUID) (*types.UserPreference, error) {
  if userID == uuid.Nil {
    return nil, apierr.AuthRequired(fmt.Errorf("no authenticated user"))
  }
  prefs, err := s.prefRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
  if err != nil {
    return nil, apierr.PersistenceFailure(fmt.Errorf("load preferences: %w", err))
  }
  if len(prefs) > 0 {
    return prefs[0], nil
  }
  return &types.UserPreference{
    UserID:   userID,
    Language: string(i18n.LangEnglish),
    Theme:    "light",
  }, nil
}

func (s *userService) SavePreferences(ctx context.Context, userID uuid.UUID, req *SavePreferencesRequest) (*types.UserPreference, error) {
  if userID == uuid.Nil {
    return nil, apierr.AuthRequired(fmt.Errorf("no authenticated user"))
  }
  if req == nil {
    return nil, apierr.InvalidInput(fmt.Errorf("empty preferences"))
  }
  if req.Language != "" && !i18n.IsValidLanguage(req.Language) {
    return nil, apierr.InvalidInput(fmt.Errorf("unknown language %q", req.Language))
  }
  row := &types.UserPreference{
    UserID:   userID,
    Language: string(i18n.ParseLanguage(req.Language)),
    Theme:    req.Theme,
  }
  if row.Theme == "" {
    row.Theme = "light"
  }
  if err := s.prefRepo.Upsert(ctx, nil, row); err != nil {
    s.log.Error("Failed to save preferences", "user_id", userID, "error", err)
    return nil, apierr.PersistenceFailure(fmt.Errorf("save preferences: %w", err))
  }
  return row, nil
}
