// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"blindauth/internal/domain/entity"
	domainerrors "blindauth/internal/domain/errors"
	"blindauth/internal/domain/repository"
	"blindauth/internal/errors"
	"blindauth/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// UserRepository implements repository.UserRepository using GORM.
type UserRepository struct {
	db *gorm.DB
}

var (
	_ repository.UserRepository = (*UserRepository)(nil)
	_ repository.Migrator       = (*UserRepository)(nil)
)

// NewUserRepository is the constructor for UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Migrate creates or updates the users table.
func (repo *UserRepository) Migrate(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).AutoMigrate(&model.UserModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate users table")
	}

	return nil
}

func (repo *UserRepository) Insert(ctx context.Context, identifierHash, secretHash string) (*entity.User, error) {
	userM := &model.UserModel{
		IdentifierHash: identifierHash,
		SecretHash:     secretHash,
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, errors.WithStack(repository.ErrIdentifierConflict)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "insert user")
	}

	return toUserDomain(userM), nil
}

func (repo *UserRepository) FindByIdentifierHash(ctx context.Context, identifierHash string) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Where("identifier_hash = ?", identifierHash).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find user by identifier hash")
	}

	return toUserDomain(&userM), nil
}

func (repo *UserRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	var userMs []*model.UserModel

	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&userMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// UpdateSecretHash leaves the table untouched when no row matches.
func (repo *UserRepository) UpdateSecretHash(ctx context.Context, identifierHash, secretHash string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("identifier_hash = ?", identifierHash).
		Update("secret_hash", secretHash).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "update secret hash")
	}

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID,
		IdentifierHash: data.IdentifierHash,
		SecretHash:     data.SecretHash,
		CreatedAt:      data.CreatedAt,
	}
}
