package ledger

import (
	"sync"

	"github.com/google/uuid"
)

// Store is the authoritative, in-memory collection of transactions.
//
// All mutations are serialized through a single lock and every read
// hands out a copy, so aggregation never observes a half-applied edit.
// Create stores with NewStore, multiple independent stores can coexist.
type Store struct {
	mu           sync.Mutex
	transactions []Transaction
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add validates the transaction, assigns an ID and appends it.
func (s *Store) Add(t Transaction) (uuid.UUID, error) {
	if err := t.validate(); err != nil {
		return uuid.Nil, err
	}

	t.ID = uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, t)

	return t.ID, nil
}

// Update replaces the full record for the given ID. The ID and the
// position in the store are kept.
func (s *Store) Update(id uuid.UUID, t Transaction) error {
	if err := t.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			t.ID = id
			s.transactions[i] = t
			return nil
		}
	}

	return ErrResourceNotFound
}

// Remove deletes the transaction with the given ID.
func (s *Store) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}

	return ErrResourceNotFound
}

// Get returns the transaction with the given ID.
func (s *Store) Get(id uuid.UUID) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.transactions {
		if t.ID == id {
			return t, nil
		}
	}

	return Transaction{}, ErrResourceNotFound
}

// List returns a snapshot of all transactions in insertion order.
func (s *Store) List() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]Transaction, len(s.transactions))
	copy(snapshot, s.transactions)

	return snapshot
}

// Len returns the number of transactions in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.transactions)
}

// Load validates all transactions and replaces the store contents with
// them, assigning fresh IDs where none is set. It is used to restore
// persisted state at startup. On error the store is left unchanged.
func (s *Store) Load(transactions []Transaction) error {
	loaded := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if err := t.validate(); err != nil {
			return err
		}

		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		loaded = append(loaded, t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = loaded

	return nil
}
