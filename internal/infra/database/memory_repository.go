package database

import (
	"context"
	"sync"
	"time"

	"github.com/mehrsalabs/leadbot/internal/entity"
)

// MemoryLeadStateRepository keeps lead state in a mutex-guarded map. It backs
// local development and tests with the exact Save/Load/Reset semantics of the
// durable stores.
type MemoryLeadStateRepository struct {
	mu    sync.RWMutex
	leads map[string]*entity.LeadState
}

func NewMemoryLeadStateRepository() *MemoryLeadStateRepository {
	return &MemoryLeadStateRepository{
		leads: make(map[string]*entity.LeadState),
	}
}

func (r *MemoryLeadStateRepository) Load(ctx context.Context, identity string) (*entity.LeadState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.leads[identity]
	if !ok {
		return entity.DefaultLeadState(identity), nil
	}
	copied := *state
	return &copied, nil
}

func (r *MemoryLeadStateRepository) Save(ctx context.Context, identity, language, name, phone string, step entity.Step) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.leads[identity]
	if !ok {
		state = &entity.LeadState{
			Identity:     identity,
			RegisteredAt: time.Now(),
		}
		r.leads[identity] = state
	}

	if language != "" {
		state.Language = language
	}
	if name != "" {
		state.Name = name
	}
	if phone != "" {
		state.Phone = phone
	}
	state.Step = step
	return nil
}

func (r *MemoryLeadStateRepository) Reset(ctx context.Context, identity string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.leads[identity]
	if !ok {
		state = &entity.LeadState{
			Identity:     identity,
			RegisteredAt: time.Now(),
		}
		r.leads[identity] = state
	}

	state.Language = ""
	state.Name = ""
	state.Phone = ""
	state.Step = entity.StepAwaitingLangSelection
	return nil
}
