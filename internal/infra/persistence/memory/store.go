// Package memory is an in-process implementation of the repository ports.
// It backs the test suites and the "memory" storage driver for local runs.
package memory

import (
	"context"
	"sync"

	"foodaid/internal/domain/entity"
	"foodaid/internal/domain/repository"
)

// Store holds the committed state. Transactions work on a private copy of the
// state which replaces the committed one on success.
type Store struct {
	mu    sync.RWMutex
	txMu  sync.Mutex
	state *state
}

type state struct {
	seq       map[string]int64
	actors    map[int64]entity.Actor
	foodBanks map[int64]entity.FoodBank
	foodItems map[int64]entity.FoodItem
	districts map[int64]entity.District
	inventory map[int64]entity.InventoryRecord
	requests  map[int64]entity.Request
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{state: newState()}
}

func newState() *state {
	return &state{
		seq:       map[string]int64{},
		actors:    map[int64]entity.Actor{},
		foodBanks: map[int64]entity.FoodBank{},
		foodItems: map[int64]entity.FoodItem{},
		districts: map[int64]entity.District{},
		inventory: map[int64]entity.InventoryRecord{},
		requests:  map[int64]entity.Request{},
	}
}

func (st *state) nextID(table string) int64 {
	st.seq[table]++

	return st.seq[table]
}

func (st *state) clone() *state {
	cp := newState()
	for k, v := range st.seq {
		cp.seq[k] = v
	}
	for k, v := range st.actors {
		cp.actors[k] = v
	}
	for k, v := range st.foodBanks {
		cp.foodBanks[k] = v
	}
	for k, v := range st.foodItems {
		cp.foodItems[k] = v
	}
	for k, v := range st.districts {
		cp.districts[k] = v
	}
	for k, v := range st.inventory {
		cp.inventory[k] = v
	}
	for k, v := range st.requests {
		cp.requests[k] = cloneRequest(v)
	}

	return cp
}

func cloneRequest(r entity.Request) entity.Request {
	cp := r
	if r.AssignedToID != nil {
		id := *r.AssignedToID
		cp.AssignedToID = &id
	}
	if r.FulfilledAt != nil {
		at := *r.FulfilledAt
		cp.FulfilledAt = &at
	}
	cp.Items = append([]entity.RequestLineItem(nil), r.Items...)

	return cp
}

// binding decides how repositories reach the state.
type binding interface {
	read(fn func(st *state))
	write(fn func(st *state))
}

type committed struct{ s *Store }

func (b committed) read(fn func(st *state)) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()
	fn(b.s.state)
}

func (b committed) write(fn func(st *state)) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	fn(b.s.state)
}

type pending struct{ st *state }

func (b pending) read(fn func(st *state)) { fn(b.st) }
func (b pending) write(fn func(st *state)) { fn(b.st) }

// factory implements repository.RepositoryFactory over a binding.
type factory struct{ b binding }

func (f factory) Actors() repository.ActorRepository { return actorRepository{f.b} }
func (f factory) FoodBanks() repository.FoodBankRepository { return foodBankRepository{f.b} }
func (f factory) FoodItems() repository.FoodItemRepository { return foodItemRepository{f.b} }
func (f factory) Districts() repository.DistrictRepository { return districtRepository{f.b} }
func (f factory) Inventory() repository.InventoryRepository { return inventoryRepository{f.b} }
func (f factory) Requests() repository.RequestRepository { return requestRepository{f.b} }

// Repositories returns a factory working on the committed state without a transaction.
func (s *Store) Repositories() repository.RepositoryFactory {
	return factory{committed{s}}
}

// TransactionManager returns the store's transaction manager.
func (s *Store) TransactionManager() repository.TransactionManager {
	return transactionManager{s}
}

type transactionManager struct{ s *Store }

// Execute runs fn against a copy of the committed state. Transactions are
// serialised; the copy replaces the committed state only when fn succeeds.
func (tm transactionManager) Execute(ctx context.Context, fn func(uow repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := tm.s
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	working := s.state.clone()
	s.mu.RUnlock()

	if err := fn(factory{pending{working}}); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = working
	s.mu.Unlock()

	return nil
}
