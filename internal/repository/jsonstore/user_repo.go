package jsonstore

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"clubsite/internal/domain"
)

// storedUser is the persisted shape of one user record. It exists because
// domain.User excludes the password hash from JSON so it can never leak
// through an API response; the store is the one place it must round-trip.
type storedUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	RollNo       string    `json:"rollNo,omitempty"`
	Semester     string    `json:"semester,omitempty"`
	Role         string    `json:"role"`
	IsVerified   bool      `json:"isVerified"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (s storedUser) toDomain() *domain.User {
	return &domain.User{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		RollNo:       s.RollNo,
		Semester:     s.Semester,
		Role:         s.Role,
		IsVerified:   s.IsVerified,
		AvatarURL:    s.AvatarURL,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func fromDomain(u *domain.User) storedUser {
	return storedUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		RollNo:       u.RollNo,
		Semester:     u.Semester,
		Role:         u.Role,
		IsVerified:   u.IsVerified,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// userDocument is the persisted shape of users.json.
type userDocument struct {
	Users []storedUser `json:"users"`
}

type userRepository struct {
	path string

	mu    sync.RWMutex
	users []*domain.User
}

// NewUserRepository loads dataDir/users.json and returns a repository backed
// by it.
func NewUserRepository(dataDir string) (domain.UserRepository, error) {
	r := &userRepository{path: filepath.Join(dataDir, "users.json")}
	var doc userDocument
	if err := loadDocument(r.path, &doc); err != nil {
		return nil, err
	}
	for _, s := range doc.Users {
		r.users = append(r.users, s.toDomain())
	}
	return r, nil
}

func (r *userRepository) flushLocked() error {
	doc := userDocument{Users: make([]storedUser, len(r.users))}
	for i, u := range r.users {
		doc.Users[i] = fromDomain(u)
	}
	return saveDocument(r.path, doc)
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
	return r.flushLocked()
}

// Update applies the patch to a clone and swaps the stored pointer, so
// records handed out by earlier reads are never written to.
func (r *userRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			updated := *u
			patch.Apply(&updated)
			updated.UpdatedAt = time.Now().UTC()
			r.users[i] = &updated
			if err := r.flushLocked(); err != nil {
				return nil, err
			}
			return &updated, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return r.flushLocked()
		}
	}
	return domain.ErrNotFound
}
