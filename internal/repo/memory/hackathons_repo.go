package memory

import (
	"context"
	"sync"
	"time"

	"github.com/espritmobile/hackhub/internal/domain/hackathon"
)

// HackathonsRepo is an in-memory store with the same behavior as the mongo
// repo. Used by tests and for running the API without a database.
type HackathonsRepo struct {
	mu    sync.RWMutex
	items map[string]hackathon.Hackathon
}

func NewHackathonsRepo() *HackathonsRepo {
	return &HackathonsRepo{
		items: make(map[string]hackathon.Hackathon),
	}
}

func (r *HackathonsRepo) Create(_ context.Context, req hackathon.CreateHackathonRequest) (hackathon.Hackathon, error) {
	h := hackathon.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items[h.ID] = h
	r.mu.Unlock()

	return h, nil
}

func (r *HackathonsRepo) List(_ context.Context) ([]hackathon.Hackathon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]hackathon.Hackathon, 0, len(r.items))

	for _, h := range r.items {
		out = append(out, cloned(h))
	}

	return out, nil
}

func (r *HackathonsRepo) GetByID(_ context.Context, id string) (hackathon.Hackathon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.items[id]

	if !ok {
		return hackathon.Hackathon{}, hackathon.ErrNotFound
	}

	return cloned(h), nil
}

func (r *HackathonsRepo) UpdatePartial(_ context.Context, id string, req hackathon.UpdateHackathonRequest) (hackathon.Hackathon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.items[id]

	if !ok {
		return hackathon.Hackathon{}, hackathon.ErrNotFound
	}

	if req.Title != nil {
		h.Title = *req.Title
	}

	if req.Description != nil {
		h.Description = *req.Description
	}

	if req.Image != nil {
		h.Image = *req.Image
	}

	if req.Status != nil {
		h.Status = hackathon.Status(*req.Status)
	}

	h.UpdatedAt = time.Now().UTC()
	r.items[id] = h

	return cloned(h), nil
}

func (r *HackathonsRepo) Delete(_ context.Context, id string) (hackathon.Hackathon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.items[id]

	if !ok {
		return hackathon.Hackathon{}, hackathon.ErrNotFound
	}

	delete(r.items, id)

	return cloned(h), nil
}

func (r *HackathonsRepo) AddParticipant(_ context.Context, id, userID string) (hackathon.Hackathon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.items[id]

	if !ok {
		return hackathon.Hackathon{}, hackathon.ErrNotFound
	}

	// check and append under the same lock, mirroring the store-side
	// conditional update of the mongo repo
	if err := h.CanParticipate(userID); err != nil {
		return hackathon.Hackathon{}, err
	}

	h = cloned(h)
	h.Participants = append(h.Participants, userID)
	h.UpdatedAt = time.Now().UTC()
	r.items[id] = h

	return cloned(h), nil
}

// cloned copies the participants slice so callers cannot mutate stored state.
func cloned(h hackathon.Hackathon) hackathon.Hackathon {
	participants := make([]string, len(h.Participants))
	copy(participants, h.Participants)
	h.Participants = participants

	return h
}
