package content

import (
	"context"
	"errors"
	"testing"

	"github.com/johnquangdev/agency-cms/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/agency-cms/internal/usecase/errors"
)

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()
	repo := newReviewRepo()
	svc := NewReviewService(repo, Options{})

	review, err := svc.Create(ctx, ReviewInput{Author: "Somchai P.", Company: "Bangkok Bakes", Rating: 5, Body: "Great work", Published: true})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if review.Slug != "somchai-p-bangkok-bakes" {
		t.Errorf("Slug = %q", review.Slug)
	}
	if review.PublishedAt == nil {
		t.Error("PublishedAt not stamped")
	}

	for _, rating := range []int{0, 6} {
		_, err := svc.Create(ctx, ReviewInput{Author: "X", Rating: rating, Body: "b"})
		if !errors.Is(err, usecaseErrors.ErrInvalidInput) {
			t.Errorf("rating %d error = %v, want ErrInvalidInput", rating, err)
		}
	}
}

func TestReviewService_ListIgnoresTag(t *testing.T) {
	repo := newReviewRepo()
	svc := NewReviewService(repo, Options{})

	published := true
	if _, _, err := svc.List(context.Background(), repositories.ContentFilters{Tag: "seo", Published: &published}); err != nil {
		t.Fatal(err)
	}
	if repo.lastFilters.Tag != "" {
		t.Errorf("Tag filter reached the repository: %q", repo.lastFilters.Tag)
	}
	if repo.lastFilters.Published == nil || !*repo.lastFilters.Published {
		t.Error("Published filter was dropped")
	}
}

func TestReviewService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(newReviewRepo(), Options{})

	if _, err := svc.Create(ctx, ReviewInput{Slug: "r1", Author: "A", Rating: 4, Body: "ok"}); err != nil {
		t.Fatal(err)
	}
	updated, err := svc.Update(ctx, "r1", ReviewInput{Author: "A", Rating: 3, Body: "fine"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Rating != 3 || updated.Slug != "r1" {
		t.Errorf("updated = %+v", updated)
	}
	if err := svc.Delete(ctx, "r1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, "r1"); !errors.Is(err, usecaseErrors.ErrReviewNotFound) {
		t.Errorf("Get after delete error = %v", err)
	}
}
