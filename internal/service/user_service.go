package service

import (
	"context"
	"net/http"
	"strings"

	"suraksha-api/internal/model"
	"suraksha-api/pkg/apierror"
)

// AdminUserStore covers the user-lifecycle operations reserved for
// administrators.
type AdminUserStore interface {
	List(ctx context.Context) ([]model.User, error)
	SetActive(ctx context.Context, id string, active bool) (model.User, error)
	SetRole(ctx context.Context, id string, role model.Role) (model.User, error)
}

type UserService struct {
	users AdminUserStore
}

func NewUserService(users AdminUserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]model.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// SetActive flips the account's active flag. Deactivation takes effect
// at the next login or refresh; outstanding access tokens run out their
// short TTL on their own.
func (s *UserService) SetActive(ctx context.Context, userID string, active bool) (model.PublicUser, error) {
	if strings.TrimSpace(userID) == "" {
		return model.PublicUser{}, apierror.New("BAD_REQUEST", "userId and isActive (boolean) are required", "", http.StatusBadRequest)
	}

	user, err := s.users.SetActive(ctx, userID, active)
	if err != nil {
		return model.PublicUser{}, err
	}
	return user.Public(), nil
}

func (s *UserService) AssignNGO(ctx context.Context, userID string) (model.PublicUser, error) {
	if strings.TrimSpace(userID) == "" {
		return model.PublicUser{}, apierror.New("BAD_REQUEST", "userId is required", "", http.StatusBadRequest)
	}

	user, err := s.users.SetRole(ctx, userID, model.RoleNGO)
	if err != nil {
		return model.PublicUser{}, err
	}
	return user.Public(), nil
}
