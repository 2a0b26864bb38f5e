package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"

	"recovery-backend/internal/auth"
	"recovery-backend/internal/cache"
	"recovery-backend/internal/models"
	"recovery-backend/internal/repositories"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// UserStore is the slice of the user repository the service needs.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	ListByRole(ctx context.Context, role string) ([]*models.User, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int) error
}

type UserService struct {
	Repo UserStore
	JWT  *auth.JWTManager
}

func NewUserService(repo UserStore, jwt *auth.JWTManager) *UserService {
	return &UserService{Repo: repo, JWT: jwt}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, errors.New("username, email and password are required")
	}
	if len(req.Password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}
	if req.Phone != "" && !phonePattern.MatchString(req.Phone) {
		return nil, errors.New("phone must be 10 digits")
	}

	role := req.Role
	if role == "" {
		role = models.RoleTelecaller
	}
	if !models.ValidRole(role) {
		return nil, errors.New("invalid role")
	}

	// Fast path; the unique index on email is the real guard.
	if existing, err := s.Repo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, errors.New("user with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, errors.New("user with this email already exists")
		}
		return nil, storeErr(err)
	}

	log.Printf("[Auth] Registered %s (%s)", user.Username, user.Role)
	return user, nil
}

// Login verifies credentials and issues a token. Every failure returns
// the same error so callers cannot tell which accounts exist.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	invalid := errors.New("invalid credentials")
	if req.Identifier == "" || req.Password == "" {
		return nil, invalid
	}

	if userID, ok := cache.GetCachedAuth(ctx, req.Identifier, req.Password); ok {
		user, err := s.Repo.Get(ctx, int(userID))
		if err == nil && user.IsActive {
			token, err := s.JWT.GenerateToken(user)
			if err != nil {
				return nil, err
			}
			return &models.AuthResponse{Token: token, User: user}, nil
		}
	}

	user, err := s.Repo.GetByIdentifier(ctx, req.Identifier)
	if err != nil {
		return nil, invalid
	}
	if !user.IsActive || !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, invalid
	}

	cache.CacheAuth(ctx, req.Identifier, req.Password, int64(user.ID))

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	log.Printf("[Auth] Login %s", user.Username)
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, role string) ([]*models.User, error) {
	if role != "" {
		if !models.ValidRole(role) {
			return nil, errors.New("invalid role")
		}
		users, err := s.Repo.ListByRole(ctx, role)
		if err != nil {
			return nil, storeErr(err)
		}
		return users, nil
	}
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		if !phonePattern.MatchString(req.Phone) {
			return nil, errors.New("phone must be 10 digits")
		}
		user.Phone = req.Phone
	}
	if req.Role != "" {
		if !models.ValidRole(req.Role) {
			return nil, errors.New("invalid role")
		}
		user.Role = req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			return nil, errors.New("password must be at least 6 characters")
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		user.PasswordHash = hash
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, errors.New("user with this email already exists")
		}
		return nil, storeErr(err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	log.Printf("[Users] Deleted user %d", id)
	return nil
}
