package handler

import (
	"context"
	"fmt"
	"io"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
	"github.com/johnquangdev/agency-cms/internal/domain/repositories"
	"github.com/johnquangdev/agency-cms/internal/usecase/content"
	usecaseErrors "github.com/johnquangdev/agency-cms/internal/usecase/errors"
)

type fakePosts struct {
	posts       map[string]*entities.Post
	err         error
	lastFilters repositories.ContentFilters
}

func (f *fakePosts) Create(_ context.Context, in content.PostInput) (*entities.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := &entities.Post{Slug: in.Slug, Title: in.Title, Body: in.Body}
	f.posts[p.Slug] = p
	return p, nil
}

func (f *fakePosts) Get(_ context.Context, slug string) (*entities.Post, error) {
	if p, ok := f.posts[slug]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrPostNotFound, slug)
}

func (f *fakePosts) GetPublished(ctx context.Context, slug string) (*entities.Post, error) {
	p, err := f.Get(ctx, slug)
	if err != nil || !p.IsLive() {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrPostNotFound, slug)
	}
	return p, nil
}

func (f *fakePosts) List(_ context.Context, filters repositories.ContentFilters) ([]*entities.Post, int64, error) {
	f.lastFilters = filters
	if f.err != nil {
		return nil, 0, f.err
	}
	out := make([]*entities.Post, 0, len(f.posts))
	for _, p := range f.posts {
		if filters.Published == nil || p.Published == *filters.Published {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakePosts) Update(ctx context.Context, slug string, in content.PostInput) (*entities.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, err := f.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	p.Title = in.Title
	return p, nil
}

func (f *fakePosts) Delete(ctx context.Context, slug string) error {
	if _, err := f.Get(ctx, slug); err != nil {
		return err
	}
	delete(f.posts, slug)
	return nil
}

type fakeVideos struct {
	videos map[string]*entities.Video
	err    error
}

func (f *fakeVideos) Create(_ context.Context, in content.VideoInput) (*entities.Video, error) {
	if f.err != nil {
		return nil, f.err
	}
	v := &entities.Video{Slug: in.Slug, Title: in.Title, VideoURL: in.VideoURL}
	f.videos[v.Slug] = v
	return v, nil
}

func (f *fakeVideos) Get(_ context.Context, slug string) (*entities.Video, error) {
	if v, ok := f.videos[slug]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrVideoNotFound, slug)
}

func (f *fakeVideos) GetPublished(ctx context.Context, slug string) (*entities.Video, error) {
	v, err := f.Get(ctx, slug)
	if err != nil || !v.IsLive() {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrVideoNotFound, slug)
	}
	return v, nil
}

func (f *fakeVideos) List(context.Context, repositories.ContentFilters) ([]*entities.Video, int64, error) {
	out := make([]*entities.Video, 0, len(f.videos))
	for _, v := range f.videos {
		out = append(out, v)
	}
	return out, int64(len(out)), nil
}

func (f *fakeVideos) Update(ctx context.Context, slug string, _ content.VideoInput) (*entities.Video, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.Get(ctx, slug)
}

func (f *fakeVideos) Delete(ctx context.Context, slug string) error {
	_, err := f.Get(ctx, slug)
	return err
}

type fakeReviews struct {
	lastFilters repositories.ContentFilters
}

func (f *fakeReviews) Create(_ context.Context, in content.ReviewInput) (*entities.Review, error) {
	return &entities.Review{Slug: "jane-acme", Author: in.Author, Rating: in.Rating, Body: in.Body}, nil
}

func (f *fakeReviews) Get(_ context.Context, slug string) (*entities.Review, error) {
	return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrReviewNotFound, slug)
}

func (f *fakeReviews) List(_ context.Context, filters repositories.ContentFilters) ([]*entities.Review, int64, error) {
	f.lastFilters = filters
	return []*entities.Review{}, 0, nil
}

func (f *fakeReviews) Update(_ context.Context, slug string, _ content.ReviewInput) (*entities.Review, error) {
	return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrReviewNotFound, slug)
}

func (f *fakeReviews) Delete(_ context.Context, slug string) error {
	return fmt.Errorf("%w: %s", usecaseErrors.ErrReviewNotFound, slug)
}

type fakeObjectStore struct{}

func (fakeObjectStore) Put(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	return "https://cdn.example.com/" + objectName, nil
}
