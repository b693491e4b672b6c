package user

import (
	"fmt"
	"strings"
	"time"

	"gastrack/internal/shared/authorization"

	vo "gastrack/internal/domain/user/valueobjects"
)

// User represents the user aggregate root (pure domain model without persistence concerns).
// A user always owns exactly one Profile, created with it at registration.
type User struct {
	id           uint
	email        *vo.Email
	name         *vo.Name
	role         authorization.UserRole
	passwordHash string
	profile      Profile
	createdAt    time.Time
	updatedAt    time.Time
}

// Profile holds the customer-facing account details owned by a User.
type Profile struct {
	accountNumber string
	address       string
	phone         string
}

// PasswordHasher hashes and verifies passwords. Implemented by the
// infrastructure layer (bcrypt).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// NewUser creates a new user aggregate with initial values.
// The account number is assigned later, once the persistence layer has
// allocated the user's numeric ID.
func NewUser(email *vo.Email, name *vo.Name, address, phone string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()
	return &User{
		email: email,
		name:  name,
		role:  authorization.RoleCustomer,
		profile: Profile{
			address: strings.TrimSpace(address),
			phone:   strings.TrimSpace(phone),
		},
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(
	id uint,
	email *vo.Email,
	name *vo.Name,
	role authorization.UserRole,
	passwordHash string,
	profile Profile,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		email:        email,
		name:         name,
		role:         role,
		passwordHash: passwordHash,
		profile:      profile,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ReconstructProfile rebuilds a Profile from persistence.
func ReconstructProfile(accountNumber, address, phone string) Profile {
	return Profile{
		accountNumber: accountNumber,
		address:       address,
		phone:         phone,
	}
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Email() *vo.Email             { return u.email }
func (u *User) Name() *vo.Name               { return u.name }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Profile() Profile             { return u.profile }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }
func (u *User) IsStaff() bool                { return u.role.IsStaff() }

func (p Profile) AccountNumber() string { return p.accountNumber }
func (p Profile) Address() string       { return p.address }
func (p Profile) Phone() string         { return p.phone }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// AssignAccountNumber stamps the generated account number onto the profile.
// The account number is immutable once set.
func (u *User) AssignAccountNumber() error {
	if u.profile.accountNumber != "" {
		return fmt.Errorf("account number is already set")
	}
	if u.id == 0 {
		return fmt.Errorf("user ID must be assigned before the account number")
	}
	u.profile.accountNumber = fmt.Sprintf("ACC%d", u.id)
	return nil
}

// SetPassword hashes and stores the given password.
func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

// VerifyPassword checks the given password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("no password set")
	}
	return hasher.Verify(password, u.passwordHash)
}

// GrantStaff promotes the user to the staff role.
func (u *User) GrantStaff() {
	u.role = authorization.RoleStaff
	u.updatedAt = time.Now()
}

// UpdateContact changes the profile's mutable contact fields.
func (u *User) UpdateContact(address, phone string) {
	u.profile.address = strings.TrimSpace(address)
	u.profile.phone = strings.TrimSpace(phone)
	u.updatedAt = time.Now()
}
