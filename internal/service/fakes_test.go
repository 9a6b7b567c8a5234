package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"suraksha-api/internal/model"
)

// In-memory stands-ins for the pgx-backed repositories.

type memUserStore struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]model.User{}}
}

func (s *memUserStore) FindByID(_ context.Context, id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return user, nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email, strings.TrimSpace(email)) {
			return user, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *memUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.FindByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (s *memUserStore) Create(_ context.Context, u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[u.ID] = u
	return nil
}

func (s *memUserStore) List(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (s *memUserStore) SetActive(_ context.Context, id string, active bool) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	user.IsActive = active
	s.users[id] = user
	return user, nil
}

func (s *memUserStore) SetRole(_ context.Context, id string, role model.Role) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	user.Role = role
	s.users[id] = user
	return user, nil
}

type memTokenStore struct {
	mu     sync.Mutex
	tokens map[string]model.RefreshToken
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{tokens: map[string]model.RefreshToken{}}
}

func (s *memTokenStore) Create(_ context.Context, t model.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tokens[t.Token]; exists {
		return model.ErrDuplicateToken
	}
	s.tokens[t.Token] = t
	return nil
}

func (s *memTokenStore) FindByToken(_ context.Context, token string) (model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.tokens[token]
	if !ok {
		return model.RefreshToken{}, model.ErrTokenNotFound
	}
	return record, nil
}

func (s *memTokenStore) DeleteByToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, token)
	return nil
}

func (s *memTokenStore) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, record := range s.tokens {
		if record.ID == id {
			delete(s.tokens, token)
		}
	}
	return nil
}

func (s *memTokenStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for token, record := range s.tokens {
		if !record.ExpiresAt.After(now) {
			delete(s.tokens, token)
			removed++
		}
	}
	return removed, nil
}
