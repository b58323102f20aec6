// package models defines the persistent data model and the display
// shapes decoded from raw API responses.
package models

import (
	"time"
)

// Model is the base interface for persistent entities.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid
}

// Repository defines data access operations for a model type.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model
	Get(id string) (T, error)                  // Get retrieves a model by ID
	Update(model T) error                      // Update modifies an existing model
	Delete(id string) error                    // Delete removes a model by ID
	List(criteria map[string]any) ([]T, error) // List retrieves models matching criteria
}
