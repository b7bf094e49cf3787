package mappers

import (
	"fmt"

	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	// ToModel converts a user domain entity to a persistence model.
	ToModel(u *user.User) *models.UserModel

	// ToDomain converts a user persistence model to a domain entity.
	// Group IDs are loaded separately by the repository.
	ToDomain(model *models.UserModel, groupIDs []uint) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToModel converts a user domain entity to a persistence model.
func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:                     u.ID(),
		Username:               u.Username().String(),
		Email:                  u.Email().String(),
		FirstName:              u.Name().First(),
		LastName:               u.Name().Last(),
		PasswordHash:           u.PasswordHash(),
		Active:                 u.IsActive(),
		EmailConfirmed:         u.IsEmailConfirmed(),
		Superuser:              u.IsSuperuser(),
		Staff:                  u.IsStaff(),
		Reserved:               u.IsReserved(),
		ActivationTokenHash:    u.ActivationTokenHash(),
		ActivationExpiresAt:    u.ActivationExpiresAt(),
		PasswordResetTokenHash: u.PasswordResetTokenHash(),
		PasswordResetExpiresAt: u.PasswordResetExpiresAt(),
		Version:                u.Version(),
		CreatedAt:              u.CreatedAt(),
		UpdatedAt:              u.UpdatedAt(),
	}

	if u.NewEmail() != nil {
		s := u.NewEmail().String()
		model.NewEmail = &s
	}

	return model
}

// ToDomain converts a user persistence model to a domain entity.
func (m *UserMapperImpl) ToDomain(model *models.UserModel, groupIDs []uint) (*user.User, error) {
	username, err := vo.NewUsername(model.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid persisted username (id=%d): %w", model.ID, err)
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid persisted email (id=%d): %w", model.ID, err)
	}

	name, err := vo.NewPersonName(model.FirstName, model.LastName)
	if err != nil {
		return nil, fmt.Errorf("invalid persisted name (id=%d): %w", model.ID, err)
	}

	var newEmail *vo.Email
	if model.NewEmail != nil && *model.NewEmail != "" {
		newEmail, err = vo.NewEmail(*model.NewEmail)
		if err != nil {
			return nil, fmt.Errorf("invalid persisted pending email (id=%d): %w", model.ID, err)
		}
	}

	return user.ReconstructUser(
		model.ID,
		username,
		email,
		name,
		user.ReconstructState{
			NewEmail:               newEmail,
			PasswordHash:           model.PasswordHash,
			Active:                 model.Active,
			EmailConfirmed:         model.EmailConfirmed,
			Superuser:              model.Superuser,
			Staff:                  model.Staff,
			Reserved:               model.Reserved,
			GroupIDs:               groupIDs,
			ActivationTokenHash:    model.ActivationTokenHash,
			ActivationExpiresAt:    model.ActivationExpiresAt,
			PasswordResetTokenHash: model.PasswordResetTokenHash,
			PasswordResetExpiresAt: model.PasswordResetExpiresAt,
		},
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
}
