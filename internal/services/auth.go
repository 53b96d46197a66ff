package services

import (
  "context"
  "fmt"
  "strings"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "golang.org/x/crypto/bcrypt"
  "gorm.io/gorm"

  "github.com/darijacode/hub-backend/internal/apierr"
  "github.com/darijacode/hub-backend/internal/logger"
  "github.com/darijacode/hub-backend/internal/repos"
  "github.com/darijacode/hub-backend/internal/requestdata"
  "github.com/darijacode/hub-backend/internal/types"
)

type JWTClaims struct {
  jwt.RegisteredClaims
}

type RegisterRequest struct {
  Email    string `json:"email"`
  Password string `json:"password"`
  FullName string `json:"fullName"`
  Username string `json:"username"`
}

type AuthService interface {
  RegisterUser(ctx context.Context, req *RegisterRequest) (*types.User, error)
  LoginUser(ctx context.Context, email, password string) (string, string, error)
  RefreshUser(ctx context.Context) (string, string, error)
  LogoutUser(ctx context.Context) error
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
  GetAccessTTL() time.Duration
}

type authService struct {
  db            *gorm.DB
  log           *logger.Logger
  userRepo      repos.UserRepo
  profileRepo   repos.ProfileRepo
  userTokenRepo repos.UserTokenRepo
  jwtSecretKey  string
  accessTTL     time.Duration
  refreshTTL    time.Duration
}

func NewAuthService(
  db *gorm.DB,
  baseLog *logger.Logger,
  userRepo repos.UserRepo,
  profileRepo repos.ProfileRepo,
  userTokenRepo repos.UserTokenRepo,
  jwtSecretKey string,
  accessTTL time.Duration,
  refreshTTL time.Duration,
) AuthService {
  serviceLog := baseLog.With("service", "AuthService")
  return &authService{
    db:            db,
    log:           serviceLog,
    userRepo:      userRepo,
    profileRepo:   profileRepo,
    userTokenRepo: userTokenRepo,
    jwtSecretKey:  jwtSecretKey,
    accessTTL:     accessTTL,
    refreshTTL:    refreshTTL,
  }
}

func (as *authService) RegisterUser(ctx context.Context, req *RegisterRequest) (*types.User, error) {
  email := strings.ToLower(strings.TrimSpace(req.Email))
  password := req.Password
  if email == "" || !strings.Contains(email, "@") {
    return nil, apierr.InvalidInput(fmt.Errorf("a valid email is required"))
  }
  if len(password) < 8 {
    return nil, apierr.InvalidInput(fmt.Errorf("password must be at least 8 characters"))
  }

  existing, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
  if err != nil {
    return nil, apierr.PersistenceFailure(fmt.Errorf("check existing email: %w", err))
  }
  if len(existing) > 0 {
    return nil, apierr.InvalidInput(fmt.Errorf("email already registered"))
  }

  hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
  if err != nil {
    return nil, fmt.Errorf("hash password: %w", err)
  }

  user := &types.User{
    ID:       uuid.New(),
    Email:    email,
    Password: string(hashed),
  }
  txErr := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, cErr := as.userRepo.Create(ctx, tx, []*types.User{user}); cErr != nil {
      return fmt.Errorf("create user: %w", cErr)
    }
    profile := &types.Profile{
      ID:       uuid.New(),
      UserID:   user.ID,
      Username: strings.TrimSpace(req.Username),
      FullName: strings.TrimSpace(req.FullName),
    }
    if _, pErr := as.profileRepo.Create(ctx, tx, []*types.Profile{profile}); pErr != nil {
      return fmt.Errorf("create profile: %w", pErr)
    }
    return nil
  })
  if txErr != nil {
    as.log.Error("Failed to register user", "error", txErr)
    return nil, apierr.PersistenceFailure(txErr)
  }
  return user, nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
  email = strings.ToLower(strings.TrimSpace(email))
  if email == "" || password == "" {
    return "", "", apierr.InvalidInput(fmt.Errorf("email and password are required"))
  }

  users, usErr := as.userRepo.GetByEmails(ctx, nil, []string{email})
  if usErr != nil {
    return "", "", apierr.PersistenceFailure(fmt.Errorf("retrieve user by email: %w", usErr))
  }
  if len(users) == 0 {
    return "", "", apierr.AuthRequired(fmt.Errorf("invalid email or password"))
  }
  user := users[0]
  if hErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); hErr != nil {
    return "", "", apierr.AuthRequired(fmt.Errorf("invalid email or password"))
  }

  var accessToken string
  var refreshToken string
  if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    foundTokens, ftErr := as.userTokenRepo.GetByUserIDs(ctx, tx, []uuid.UUID{user.ID})
    if ftErr != nil {
      return fmt.Errorf("check user tokens: %w", ftErr)
    }
    staleIDs := make([]uuid.UUID, 0, len(foundTokens))
    for _, tok := range foundTokens {
      if tok != nil {
        staleIDs = append(staleIDs, tok.ID)
      }
    }
    if dtErr := as.userTokenRepo.FullDeleteByIDs(ctx, tx, staleIDs); dtErr != nil {
      return fmt.Errorf("delete stale user tokens: %w", dtErr)
    }
    tok, genErr := as.generateAccessToken(user)
    if genErr != nil {
      return fmt.Errorf("generate access token: %w", genErr)
    }
    accessToken = tok
    refreshToken = uuid.New().String()
    userToken := types.UserToken{
      ID:           uuid.New(),
      UserID:       user.ID,
      AccessToken:  accessToken,
      RefreshToken: refreshToken,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, ctErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&userToken}); ctErr != nil {
      as.log.Warn("Create user token error", "error", ctErr)
      return fmt.Errorf("create user token: %w", ctErr)
    }
    return nil
  }); err != nil {
    return "", "", apierr.PersistenceFailure(err)
  }
  return accessToken, refreshToken, nil
}

func (as *authService) RefreshUser(ctx context.Context) (string, string, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.RefreshToken == "" {
    return "", "", apierr.AuthRequired(fmt.Errorf("no refresh token in context"))
  }

  var accessToken string
  var newRefreshToken string
  err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    foundTokens, ftErr := as.userTokenRepo.GetByRefreshTokens(ctx, tx, []string{rd.RefreshToken})
    if ftErr != nil {
      return fmt.Errorf("fetch refresh token: %w", ftErr)
    }
    if len(foundTokens) == 0 || foundTokens[0] == nil {
      return apierr.AuthRequired(fmt.Errorf("unknown refresh token"))
    }
    existingToken := foundTokens[0]
    if existingToken.ExpiresAt.Before(time.Now()) {
      if dtErr := as.userTokenRepo.FullDeleteByIDs(ctx, tx, []uuid.UUID{existingToken.ID}); dtErr != nil {
        return fmt.Errorf("delete expired refresh token: %w", dtErr)
      }
      return apierr.AuthRequired(fmt.Errorf("refresh token expired"))
    }
    users, uErr := as.userRepo.GetByIDs(ctx, tx, []uuid.UUID{existingToken.UserID})
    if uErr != nil {
      return fmt.Errorf("load user for refresh: %w", uErr)
    }
    if len(users) == 0 {
      return apierr.AuthRequired(fmt.Errorf("no user for refresh token"))
    }
    user := users[0]
    tok, genErr := as.generateAccessToken(user)
    if genErr != nil {
      return fmt.Errorf("generate access token: %w", genErr)
    }
    accessToken = tok
    newRefreshToken = uuid.New().String()
    newUserToken := types.UserToken{
      ID:           uuid.New(),
      UserID:       user.ID,
      AccessToken:  tok,
      RefreshToken: newRefreshToken,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, cErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&newUserToken}); cErr != nil {
      return fmt.Errorf("create rotated user token: %w", cErr)
    }
    if dErr := as.userTokenRepo.FullDeleteByIDs(ctx, tx, []uuid.UUID{existingToken.ID}); dErr != nil {
      return fmt.Errorf("remove old refresh token: %w", dErr)
    }
    return nil
  })
  if err != nil {
    as.log.Warn("Refresh failed", "error", err)
    if apierr.Code(err) != "" {
      return "", "", err
    }
    return "", "", apierr.PersistenceFailure(err)
  }
  return accessToken, newRefreshToken, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.TokenString == "" {
    return apierr.AuthRequired(fmt.Errorf("no access token in context"))
  }
  return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    foundTokens, ftErr := as.userTokenRepo.GetByAccessTokens(ctx, tx, []string{rd.TokenString})
    if ftErr != nil {
      return fmt.Errorf("find user token: %w", ftErr)
    }
    ids := make([]uuid.UUID, 0, len(foundTokens))
    for _, tok := range foundTokens {
      if tok != nil {
        ids = append(ids, tok.ID)
      }
    }
    if tdErr := as.userTokenRepo.FullDeleteByIDs(ctx, tx, ids); tdErr != nil {
      return fmt.Errorf("delete user token: %w", tdErr)
    }
    return nil
  })
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
  claims := JWTClaims{
    RegisteredClaims: jwt.RegisteredClaims{
      Subject:   user.ID.String(),
      ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
      IssuedAt:  jwt.NewNumericDate(time.Now()),
    },
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  if tokenString == "" {
    return ctx, apierr.AuthRequired(fmt.Errorf("missing access token"))
  }
  parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil {
    return ctx, apierr.AuthRequired(fmt.Errorf("parse token: %w", err))
  }
  claims, ok := parsedToken.Claims.(*JWTClaims)
  if !ok || !parsedToken.Valid {
    return ctx, apierr.AuthRequired(fmt.Errorf("invalid or expired token"))
  }
  userID, err := uuid.Parse(claims.Subject)
  if err != nil {
    return ctx, apierr.AuthRequired(fmt.Errorf("invalid user id in token: %w", err))
  }
  foundTokens, ftErr := as.userTokenRepo.GetByAccessTokens(ctx, nil, []string{tokenString})
  if ftErr != nil {
    return ctx, fmt.Errorf("fetch user token by access token: %w", ftErr)
  }
  if len(foundTokens) == 0 || foundTokens[0] == nil {
    return ctx, apierr.AuthRequired(fmt.Errorf("token revoked"))
  }
  rd := &requestdata.RequestData{
    TokenString:  tokenString,
    RefreshToken: foundTokens[0].RefreshToken,
    UserID:       userID,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
  return as.accessTTL
}
