package database

import (
	"context"
	"log"

	"github.com/Danokhov/pro-mnemo-app/pkg/models"
)

// ItemStore is the study-item persistence contract the DualStore composes
type ItemStore interface {
	GetAll(ctx context.Context, userID string) ([]models.StudyItem, error)
	Put(ctx context.Context, userID string, item models.StudyItem) error
	Delete(ctx context.Context, userID, itemID string) error
}

// DualStore combines the always-available local store with an optional
// remote one. Writes go to the local store first and must succeed; the
// remote write is best-effort and a failure does not roll back the local
// one. Reads prefer remote data, mirroring it into the local store, and
// fall back to local data when the remote store is unreachable.
//
// The two stores are not transactional with each other: the model is
// eventually consistent, last write wins. Divergent histories are not
// merged.
type DualStore struct {
	local  ItemStore
	remote ItemStore // nil when no remote store is configured
}

// NewDualStore creates a dual store. remote may be nil, in which case all
// operations go to the local store only.
func NewDualStore(local, remote ItemStore) *DualStore {
	return &DualStore{local: local, remote: remote}
}

// GetAll reads the user's study items, preferring the remote copy
func (s *DualStore) GetAll(ctx context.Context, userID string) ([]models.StudyItem, error) {
	if s.remote == nil {
		return s.local.GetAll(ctx, userID)
	}

	items, err := s.remote.GetAll(ctx, userID)
	if err != nil {
		log.Printf("Remote store read failed, falling back to local: %v", err)
		return s.local.GetAll(ctx, userID)
	}

	// Mirror the remote copy into the local store so the next offline
	// session sees it. The local set is reconciled to match: items
	// deleted remotely are dropped locally as well, otherwise they
	// would come back on the next remote outage.
	remoteIDs := make(map[string]bool, len(items))
	for _, item := range items {
		remoteIDs[item.ItemID] = true
		if err := s.local.Put(ctx, userID, item); err != nil {
			log.Printf("Failed to mirror study item %s locally: %v", item.ItemID, err)
		}
	}
	stale, err := s.local.GetAll(ctx, userID)
	if err != nil {
		log.Printf("Failed to read local store for reconciliation: %v", err)
		return items, nil
	}
	for _, item := range stale {
		if !remoteIDs[item.ItemID] {
			if err := s.local.Delete(ctx, userID, item.ItemID); err != nil {
				log.Printf("Failed to drop stale local item %s: %v", item.ItemID, err)
			}
		}
	}
	return items, nil
}

// Put writes the item locally, then to the remote store best-effort
func (s *DualStore) Put(ctx context.Context, userID string, item models.StudyItem) error {
	if err := s.local.Put(ctx, userID, item); err != nil {
		return err
	}
	if s.remote != nil {
		if err := s.remote.Put(ctx, userID, item); err != nil {
			log.Printf("Remote store write failed for item %s: %v", item.ItemID, err)
		}
	}
	return nil
}

// Delete removes the item locally, then remotely best-effort
func (s *DualStore) Delete(ctx context.Context, userID, itemID string) error {
	if err := s.local.Delete(ctx, userID, itemID); err != nil {
		return err
	}
	if s.remote != nil {
		if err := s.remote.Delete(ctx, userID, itemID); err != nil {
			log.Printf("Remote store delete failed for item %s: %v", itemID, err)
		}
	}
	return nil
}
