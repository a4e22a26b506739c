package repository

import (
	"context"

	"github.com/internship-hub-portal/internal/kvstore"
	"github.com/internship-hub-portal/internal/models"
	"github.com/rs/zerolog"
)

// placementRepo is the concrete implementation of PlacementRepository
type placementRepo struct {
	items *collection[models.PlacementQueueItem]
}

// NewPlacementRepo creates a new placement repository
func NewPlacementRepo(store kvstore.Store, log zerolog.Logger) PlacementRepository {
	return &placementRepo{items: &collection[models.PlacementQueueItem]{
		store: store,
		key:   kvstore.KeyPlacementQueue,
		locks: collectionLocks,
		log:   log.With().Str("repository", "placement").Logger(),
	}}
}

// Upsert replaces the record for item.StudentID, or appends it
func (r *placementRepo) Upsert(ctx context.Context, item *models.PlacementQueueItem) error {
	return r.items.update(ctx, func(items []models.PlacementQueueItem) ([]models.PlacementQueueItem, bool) {
		for i := range items {
			if items[i].StudentID == item.StudentID {
				items[i] = *item
				return items, true
			}
		}
		return append(items, *item), true
	})
}

// GetByStudentID retrieves a placement by student. Returns nil if absent.
func (r *placementRepo) GetByStudentID(ctx context.Context, studentID string) (*models.PlacementQueueItem, error) {
	items, err := r.items.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].StudentID == studentID {
			return &items[i], nil
		}
	}
	return nil, nil
}

// List returns the whole queue in insertion order
func (r *placementRepo) List(ctx context.Context) ([]models.PlacementQueueItem, error) {
	items, err := r.items.load(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.PlacementQueueItem{}
	}
	return items, nil
}
