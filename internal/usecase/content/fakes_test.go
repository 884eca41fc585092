package content

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
	"github.com/johnquangdev/agency-cms/internal/domain/repositories"
)

// fakeRepo is an in-memory repository keyed by slug. Records are copied on
// the way in and out so callers cannot mutate stored state.
type fakeRepo[T any] struct {
	mu          sync.Mutex
	items       map[string]T
	slugOf      func(*T) string
	idOf        func(*T) *uuid.UUID
	lastFilters repositories.ContentFilters
	// err, when set, is returned by FindBySlug and List
	err error
}

func newFakeRepo[T any](slugOf func(*T) string, idOf func(*T) *uuid.UUID) *fakeRepo[T] {
	return &fakeRepo[T]{items: map[string]T{}, slugOf: slugOf, idOf: idOf}
}

func newPostRepo() *fakeRepo[entities.Post] {
	return newFakeRepo(func(p *entities.Post) string { return p.Slug }, func(p *entities.Post) *uuid.UUID { return &p.ID })
}

func newVideoRepo() *fakeRepo[entities.Video] {
	return newFakeRepo(func(v *entities.Video) string { return v.Slug }, func(v *entities.Video) *uuid.UUID { return &v.ID })
}

func newReviewRepo() *fakeRepo[entities.Review] {
	return newFakeRepo(func(r *entities.Review) string { return r.Slug }, func(r *entities.Review) *uuid.UUID { return &r.ID })
}

func (f *fakeRepo[T]) Create(_ context.Context, v *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[f.slugOf(v)]; ok {
		return gorm.ErrDuplicatedKey
	}
	*f.idOf(v) = uuid.New()
	f.items[f.slugOf(v)] = *v
	return nil
}

func (f *fakeRepo[T]) FindBySlug(_ context.Context, slug string) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.items[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

func (f *fakeRepo[T]) Update(_ context.Context, v *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := *f.idOf(v)
	for slug, item := range f.items {
		if *f.idOf(&item) == id {
			delete(f.items, slug)
			f.items[f.slugOf(v)] = *v
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo[T]) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for slug, item := range f.items {
		if *f.idOf(&item) == id {
			delete(f.items, slug)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo[T]) List(_ context.Context, filters repositories.ContentFilters) ([]*T, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilters = filters
	if f.err != nil {
		return nil, 0, f.err
	}
	out := make([]*T, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, &item)
	}
	return out, int64(len(out)), nil
}

// remove deletes a record behind the service's back
func (f *fakeRepo[T]) remove(slug string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, slug)
}
