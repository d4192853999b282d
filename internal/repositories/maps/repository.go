// Package maps defines the interface for map zone persistence
package maps

//go:generate mockgen -destination=mock/mock_repository.go -package=mapsmock github.com/emberfall/campaign-api/internal/repositories/maps Repository

import (
	"context"

	"github.com/emberfall/campaign-api/internal/entities/world"
)

// Repository defines the interface for map zone persistence
type Repository interface {
	// Create persists a new zone
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists when (campaignSeed, zoneId) is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a zone by campaign seed and zone ID
	// Returns errors.InvalidArgument for empty keys
	// Returns errors.NotFound if the zone doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByID retrieves a zone by its record ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the zone doesn't exist
	// Returns errors.Internal for storage failures
	GetByID(ctx context.Context, input GetByIDInput) (*GetByIDOutput, error)

	// Update replaces an existing zone record
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the zone doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// ListByCampaign retrieves all zones of a campaign, sorted by zone ID
	// Returns errors.InvalidArgument for empty campaign seeds
	// Returns errors.Internal for storage failures
	ListByCampaign(ctx context.Context, input ListByCampaignInput) (*ListByCampaignOutput, error)
}

// CreateInput defines the input for creating a zone
type CreateInput struct {
	Zone *world.Zone
}

// CreateOutput defines the output for creating a zone
type CreateOutput struct {
	Zone *world.Zone
}

// GetInput defines the input for getting a zone by campaign seed and zone ID
type GetInput struct {
	CampaignSeed string
	ZoneID       string
}

// GetOutput defines the output for getting a zone
type GetOutput struct {
	Zone *world.Zone
}

// GetByIDInput defines the input for getting a zone by record ID
type GetByIDInput struct {
	ID string
}

// GetByIDOutput defines the output for getting a zone by record ID
type GetByIDOutput struct {
	Zone *world.Zone
}

// UpdateInput defines the input for updating a zone
type UpdateInput struct {
	Zone *world.Zone
}

// UpdateOutput defines the output for updating a zone
type UpdateOutput struct {
	Zone *world.Zone
}

// ListByCampaignInput defines the input for listing a campaign's zones
type ListByCampaignInput struct {
	CampaignSeed string
}

// ListByCampaignOutput defines the output for listing a campaign's zones
type ListByCampaignOutput struct {
	Zones []*world.Zone
}
