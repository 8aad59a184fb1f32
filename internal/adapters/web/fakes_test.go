package web

import (
	"context"
	"sync"

	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
)

type fakeList struct {
	mu       sync.Mutex
	result   []domain.Property
	err      error
	received []domain.FilterCriteria
}

func (f *fakeList) Execute(_ context.Context, filters domain.FilterCriteria) ([]domain.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.received = append(f.received, filters)
	return f.result, f.err
}

type fakeDetails struct {
	byID map[string]*domain.PropertyWithOwner
}

func (f *fakeDetails) Execute(_ context.Context, id string) (*domain.PropertyWithOwner, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPropertyNotFound
}

type fakeCreate struct {
	mu    sync.Mutex
	calls []domain.NewProperty
	err   error
}

func (f *fakeCreate) Execute(_ context.Context, p domain.NewProperty) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, p)
	return f.err
}

type fakeUpdate struct {
	mu    sync.Mutex
	calls []domain.PropertyUpdate
	err   error
}

func (f *fakeUpdate) Execute(_ context.Context, u domain.PropertyUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, u)
	return f.err
}
