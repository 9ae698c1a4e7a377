package entities

import (
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"task-service/internal/domain"
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleMember || r == RoleAdmin
}

// User is a stored account. Password holds the bcrypt hash and is empty
// whenever the user was read through a credential-excluding projection.
type User struct {
	Id              string    `json:"_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Password        string    `json:"-"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	Role            Role      `json:"role"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func NewUser(name, email, password string, role Role) *User {
	now := time.Now().UTC()
	if role == "" {
		role = RoleMember
	}
	return &User{
		CreatedAt: now,
		UpdatedAt: now,
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		Password:  password,
		Role:      role,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) validate() error {
	if u.Name == "" {
		return domain.Invalid("name must not be empty")
	}
	if u.Email == "" {
		return domain.Invalid("email must not be empty")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return domain.Invalid("email %q is not a valid address", u.Email)
	}
	if u.Password == "" {
		return domain.Invalid("password must not be empty")
	}
	if !u.Role.Valid() {
		return domain.Invalid("unknown role %q", u.Role)
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return domain.Invalid("created_at must be before updated_at")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Public returns a copy with the credential cleared.
func (u *User) Public() *User {
	cp := *u
	cp.Password = ""
	return &cp
}
