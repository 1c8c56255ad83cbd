// Package memory is the in-process storage adapter: the same ports as the
// postgres adapter, backed by maps. It is used when the service runs without
// a database and as the fast backend of the registry tests.
//
// Writes are staged in the unit of work and applied atomically on Commit.
// GetForUpdate and the identifier allocator take per-key locks that are held
// until Commit or Rollback, which gives the same per-parcel serialization
// as SELECT ... FOR UPDATE.
package memory

import (
	"sync"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/keylock"
)

type lockKey struct {
	scope string
	id    uint64
}

var sequenceKey = lockKey{scope: "sequence"}

func parcelKey(id uint64) lockKey {
	return lockKey{scope: "parcel", id: id}
}

// Store holds committed state shared by every unit of work created from it.
type Store struct {
	mu       sync.RWMutex
	parcels  map[uint64]parcelRecord
	trackers map[uint64]trackerRecord
	payments map[uint64][]paymentRecord
	nextID   uint64

	locks *keylock.KeyLock[lockKey]
}

func NewStore() *Store {
	return &Store{
		parcels:  make(map[uint64]parcelRecord),
		trackers: make(map[uint64]trackerRecord),
		payments: make(map[uint64][]paymentRecord),
		nextID:   kernel.FirstParcelID,
		locks:    keylock.New[lockKey](),
	}
}

func (s *Store) parcel(id uint64) (parcelRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.parcels[id]
	return r, ok
}

func (s *Store) tracker(id uint64) (trackerRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.trackers[id]
	return r, ok
}

func (s *Store) parcelsSnapshot() []parcelRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]parcelRecord, 0, len(s.parcels))
	for _, r := range s.parcels {
		records = append(records, r)
	}
	return records
}

func (s *Store) paymentsOf(id uint64) []paymentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]paymentRecord(nil), s.payments[id]...)
}

func (s *Store) next() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}

func (s *Store) apply(c *changeSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range c.parcels {
		s.parcels[id] = r
	}
	for id, r := range c.trackers {
		s.trackers[id] = r
	}
	for _, r := range c.payments {
		s.payments[r.ParcelID] = append(s.payments[r.ParcelID], r)
	}
	if c.nextID > s.nextID {
		s.nextID = c.nextID
	}
}
