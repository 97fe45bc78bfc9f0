package memory

import (
	"context"
	"sync"
	"time"

	"github.com/espritmobile/hackhub/internal/domain/user"
)

type UsersRepo struct {
	mu    sync.RWMutex
	items map[string]user.User
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		items: make(map[string]user.User),
	}
}

func (r *UsersRepo) Create(_ context.Context, req user.CreateUserRequest, passwordHash string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Email == req.Email {
			return user.User{}, user.ErrEmailTaken
		}
	}

	u := user.NewFromCreateRequest(req, passwordHash)
	r.items[u.ID] = u

	return u, nil
}

func (r *UsersRepo) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.items))

	for _, u := range r.items {
		out = append(out, u)
	}

	return out, nil
}

func (r *UsersRepo) GetByID(_ context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]

	if !ok {
		return user.User{}, user.ErrNotFound
	}

	return u, nil
}

func (r *UsersRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}

	return user.User{}, user.ErrNotFound
}

func (r *UsersRepo) UpdatePartial(_ context.Context, id string, req user.UpdateUserRequest, passwordHash *string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]

	if !ok {
		return user.User{}, user.ErrNotFound
	}

	if req.Email != nil && *req.Email != u.Email {
		for _, existing := range r.items {
			if existing.Email == *req.Email {
				return user.User{}, user.ErrEmailTaken
			}
		}

		u.Email = *req.Email
	}

	if req.Name != nil {
		u.Name = *req.Name
	}

	if req.Age != nil {
		u.Age = req.Age
	}

	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}

	u.UpdatedAt = time.Now().UTC()
	r.items[id] = u

	return u, nil
}

func (r *UsersRepo) Delete(_ context.Context, id string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]

	if !ok {
		return user.User{}, user.ErrNotFound
	}

	delete(r.items, id)

	return u, nil
}
