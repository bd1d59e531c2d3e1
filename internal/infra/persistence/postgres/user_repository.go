package postgres

import (
	"context"
	"encoding/json"
	"time"

	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	"kix/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new user account.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindUserByID retrieves a user by their unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM)
}

// FindUserByEmail retrieves a user by email address.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM)
}

// UpdateUser persists profile changes for an existing user.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	userM, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"display_name": userM.DisplayName,
			"roles":        userM.Roles,
			"address":      userM.Address,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateAddress replaces the user's saved shipping address.
func (repo *userRepository) UpdateAddress(ctx context.Context, userID uuid.UUID, address *entity.ShippingAddress) error {
	addressJSON, err := json.Marshal(address)
	if err != nil {
		return errors.Wrap(err, "failed to marshal shipping address")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"address":    addressJSON,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mappers ---

func fromUserDomain(user *entity.User) (*model.UserModel, error) {
	rolesJSON, err := json.Marshal(user.RoleStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal user roles")
	}

	userM := &model.UserModel{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		DisplayName:  user.DisplayName,
		Roles:        rolesJSON,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if user.Address != nil {
		addressJSON, err := json.Marshal(user.Address)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal user address")
		}
		userM.Address = addressJSON
	}

	return userM, nil
}

func toUserDomain(userM *model.UserModel) (*entity.User, error) {
	var roleStrings []string
	if len(userM.Roles) > 0 {
		if err := json.Unmarshal(userM.Roles, &roleStrings); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal user roles")
		}
	}

	roles := make([]entity.Role, 0, len(roleStrings))
	for _, r := range roleStrings {
		roles = append(roles, entity.Role(r))
	}

	user := &entity.User{
		ID:           userM.ID,
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		DisplayName:  userM.DisplayName,
		Roles:        roles,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}

	if len(userM.Address) > 0 {
		var address entity.ShippingAddress
		if err := json.Unmarshal(userM.Address, &address); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal user address")
		}
		user.Address = &address
	}

	return user, nil
}
