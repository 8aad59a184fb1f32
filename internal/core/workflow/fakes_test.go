package workflow

import (
	"context"
	"sync"

	"github.com/KevinMolina1996/realestate-front/internal/core/domain"
)

type fakeCreator struct {
	mu      sync.Mutex
	calls   []domain.NewProperty
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeCreator) Execute(_ context.Context, p domain.NewProperty) error {
	f.mu.Lock()
	f.calls = append(f.calls, p)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.err
}

func (f *fakeCreator) Calls() []domain.NewProperty {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.NewProperty(nil), f.calls...)
}

type fakeUpdater struct {
	mu      sync.Mutex
	calls   []domain.PropertyUpdate
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeUpdater) Execute(_ context.Context, u domain.PropertyUpdate) error {
	f.mu.Lock()
	f.calls = append(f.calls, u)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.err
}

func (f *fakeUpdater) Calls() []domain.PropertyUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.PropertyUpdate(nil), f.calls...)
}

// recorder пишет порядок вызова колбэков
type recorder struct {
	events []string
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnSuccess: func() { r.events = append(r.events, "success") },
		OnClose:   func() { r.events = append(r.events, "close") },
	}
}

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
