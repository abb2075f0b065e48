// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
// Missing rows are reported with the NotFound errors of the domain errors package.
package repository

import (
	"context"

	"foodaid/internal/domain/entity"
)

// ActorRepository persists actors of the identity directory.
type ActorRepository interface {
	// FindByID retrieves an actor by ID.
	FindByID(ctx context.Context, id int64) (*entity.Actor, error)

	// FindByUsername retrieves an actor by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Actor, error)

	// Create persists a new actor and assigns its ID.
	Create(ctx context.Context, actor *entity.Actor) error
}
