package mappers

import (
	"time"

	"gastrack/internal/domain/user"
	vo "gastrack/internal/domain/user/valueobjects"
	"gastrack/internal/infrastructure/persistence/models"
	"gastrack/internal/shared/authorization"
)

// UserMapper converts between the user aggregate and its persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ProfileToModel(u *user.User) *models.ProfileModel
	ToDomain(model *models.UserModel, profile *models.ProfileModel) (*user.User, error)
	SessionToModel(s *user.Session) *models.SessionModel
	SessionToDomain(model *models.SessionModel) (*user.Session, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email().String(),
		FirstName:    u.Name().FirstName(),
		LastName:     u.Name().LastName(),
		Role:         string(u.Role()),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ProfileToModel(u *user.User) *models.ProfileModel {
	return &models.ProfileModel{
		UserID:        u.ID(),
		AccountNumber: u.Profile().AccountNumber(),
		Address:       u.Profile().Address(),
		Phone:         u.Profile().Phone(),
	}
}

// ToDomain rebuilds the aggregate. profile may be nil for a user row whose
// profile has not been created yet.
func (m *UserMapperImpl) ToDomain(model *models.UserModel, profile *models.ProfileModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}
	name, err := vo.NewName(model.FirstName, model.LastName)
	if err != nil {
		return nil, err
	}

	var p user.Profile
	if profile != nil {
		p = user.ReconstructProfile(profile.AccountNumber, profile.Address, profile.Phone)
	}

	return user.ReconstructUser(
		model.ID,
		email,
		name,
		authorization.ParseUserRole(model.Role),
		model.PasswordHash,
		p,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) SessionToModel(s *user.Session) *models.SessionModel {
	model := &models.SessionModel{
		ID:        s.ID(),
		UserID:    s.UserID(),
		IPAddress: s.IPAddress(),
		UserAgent: s.UserAgent(),
		ExpiresAt: s.ExpiresAt().UnixMilli(),
		CreatedAt: s.CreatedAt().UnixMilli(),
	}
	if s.RevokedAt() != nil {
		revoked := s.RevokedAt().UnixMilli()
		model.RevokedAt = &revoked
	}
	return model
}

func (m *UserMapperImpl) SessionToDomain(model *models.SessionModel) (*user.Session, error) {
	var revokedAt *time.Time
	if model.RevokedAt != nil {
		t := time.UnixMilli(*model.RevokedAt)
		revokedAt = &t
	}

	return user.ReconstructSession(
		model.ID,
		model.UserID,
		model.IPAddress,
		model.UserAgent,
		time.UnixMilli(model.ExpiresAt),
		time.UnixMilli(model.CreatedAt),
		revokedAt,
	)
}
