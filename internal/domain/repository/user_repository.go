// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"catalog/internal/domain/entity"
)

// UserRepository is the credential store. Lookups that miss return
// domainerrors.ErrUserNotFound; unique violations on Create/Update return
// domainerrors.ErrUsernameAlreadyExists or domainerrors.ErrEmailAlreadyExists.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user and fills in its generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update saves every mutable column of an existing user in one statement.
	Update(ctx context.Context, user *entity.User) error
}
