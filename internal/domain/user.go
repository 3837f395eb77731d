package domain

import (
	"context"
	"time"
)

// User roles.
const (
	RoleAdmin  = "admin"
	RoleMentor = "mentor"
	RoleMember = "member"
	RoleGuest  = "guest"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleMentor, RoleMember, RoleGuest:
		return true
	default:
		return false
	}
}

// User represents a registered user. PasswordHash is never serialized.
// swagger:model User
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	PasswordHash string `json:"-"`

	RollNo   string `json:"rollNo,omitempty"`
	Semester string `json:"semester,omitempty"`

	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`

	AvatarURL string `json:"avatarUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserPatch is a partial user update; only non-nil fields are applied.
// Password is handled separately by the service (it is re-hashed, never
// stored as given).
type UserPatch struct {
	Name     *string
	Email    *string
	Role     *string
	RollNo   *string
	Semester *string
	// PasswordHash, when non-nil, replaces the stored hash.
	PasswordHash *string
}

// Apply overwrites u's fields with the patch's non-nil fields.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.RollNo != nil {
		u.RollNo = *p.RollNo
	}
	if p.Semester != nil {
		u.Semester = *p.Semester
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
}

// PasswordHasher hashes and verifies passwords.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user's ID and role.
type TokenVerifier interface {
	Verify(token string) (userID, role string, err error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	List(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, id string, patch UserPatch) (*User, error)
	Delete(ctx context.Context, id string) error
}

// NewUserInput carries the fields an admin supplies when creating a user.
type NewUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	RollNo   string
	Semester string
}

// UpdateUserInput carries the optional fields of an admin user update.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Role     *string
	RollNo   *string
	Semester *string
	Password *string
}

// UserService defines the admin-facing user management logic.
type UserService interface {
	ListUsers(ctx context.Context) ([]*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	CreateUser(ctx context.Context, input NewUserInput) (*User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}

// AuthService defines login and identity operations.
type AuthService interface {
	// AdminLogin authenticates an admin and returns the user and a signed token.
	// Returns ErrInvalidCredentials for unknown email or wrong password, and
	// ErrForbidden for a valid non-admin user.
	AdminLogin(ctx context.Context, email, password string) (*User, string, error)
	GetMe(ctx context.Context, userID string) (*User, error)
	// EnsureAdmin seeds the admin user on startup: creates it if absent, and
	// converges role and password if it drifted.
	EnsureAdmin(ctx context.Context, email, password string) error
}
