package content

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
	"github.com/johnquangdev/agency-cms/internal/domain/repositories"
	"github.com/johnquangdev/agency-cms/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/agency-cms/internal/usecase/errors"
)

func newTestPostService(t *testing.T, minFAQs int) (*postService, *fakeRepo[entities.Post], *cache.MemoryStore) {
	t.Helper()
	repo := newPostRepo()
	store := cache.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	svc := NewPostService(repo, Options{Cache: store, CacheTTL: time.Minute, MinFAQs: minFAQs}).(*postService)
	return svc, repo, store
}

func TestPostService_CreateDerivesSlugAndFAQs(t *testing.T) {
	svc, _, _ := newTestPostService(t, 0)

	post, err := svc.Create(context.Background(), PostInput{
		Title:  "  Café SEO: 10 Quick Wins!  ",
		Body:   "<p>Body</p>",
		Tags:   []string{"SEO", " seo ", "local"},
		RawFAQ: "Q: How long does SEO take?\nA: Three to six months.",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if post.Slug != "cafe-seo-10-quick-wins" {
		t.Errorf("Slug = %q", post.Slug)
	}
	if post.Title != "Café SEO: 10 Quick Wins!" {
		t.Errorf("Title = %q", post.Title)
	}
	if want := []string{"seo", "local"}; !reflect.DeepEqual([]string(post.Tags), want) {
		t.Errorf("Tags = %v, want %v", post.Tags, want)
	}
	want := []entities.FaqPair{{Q: "How long does SEO take?", A: "Three to six months."}}
	if !reflect.DeepEqual([]entities.FaqPair(post.FAQs), want) {
		t.Errorf("FAQs = %#v, want %#v", post.FAQs, want)
	}
	if post.Published || post.PublishedAt != nil {
		t.Error("draft was published")
	}
}

func TestPostService_CreateSlugRules(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPostService(t, 0)

	if _, err := svc.Create(ctx, PostInput{Slug: "taken", Title: "First"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, PostInput{Slug: "taken", Title: "Second"}); !errors.Is(err, usecaseErrors.ErrSlugTaken) {
		t.Errorf("duplicate slug error = %v, want ErrSlugTaken", err)
	}
	if _, err := svc.Create(ctx, PostInput{Slug: "Not A Slug", Title: "Third"}); !errors.Is(err, usecaseErrors.ErrInvalidInput) {
		t.Errorf("invalid slug error = %v, want ErrInvalidInput", err)
	}

	thai, err := svc.Create(ctx, PostInput{Title: "การตลาดออนไลน์"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(thai.Slug, "post-") || !entities.IsSlug(thai.Slug) {
		t.Errorf("fallback slug = %q", thai.Slug)
	}

	if _, err := svc.Create(ctx, PostInput{Title: "   "}); !errors.Is(err, usecaseErrors.ErrInvalidInput) {
		t.Errorf("blank title error = %v, want ErrInvalidInput", err)
	}
}

func TestPostService_ExplicitFAQsOverrideRaw(t *testing.T) {
	svc, _, _ := newTestPostService(t, 0)

	post, err := svc.Create(context.Background(), PostInput{
		Title:  "Override",
		RawFAQ: "Q: ignored?\nA: yes",
		FAQs:   []entities.FaqPair{{Q: " Kept? ", A: " Kept. "}},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []entities.FaqPair{{Q: "Kept?", A: "Kept."}}
	if !reflect.DeepEqual([]entities.FaqPair(post.FAQs), want) {
		t.Errorf("FAQs = %#v, want %#v", post.FAQs, want)
	}
}

func TestPostService_MinFAQsOnPublish(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPostService(t, 2)

	input := PostInput{Title: "Thin", RawFAQ: "Q: one?\nA: 1", Published: true}
	_, err := svc.Create(ctx, input)

	var shortage *FAQShortageError
	if !errors.As(err, &shortage) {
		t.Fatalf("Create() error = %v, want FAQShortageError", err)
	}
	if shortage.Have != 1 || shortage.Want != 2 {
		t.Errorf("shortage = %+v", shortage)
	}
	if !errors.Is(err, usecaseErrors.ErrNotEnoughFAQs) {
		t.Error("shortage does not match ErrNotEnoughFAQs")
	}

	input.Published = false
	if _, err := svc.Create(ctx, input); err != nil {
		t.Errorf("draft with few FAQs rejected: %v", err)
	}
}

func TestPostService_GetPublishedUsesCache(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestPostService(t, 0)

	if _, err := svc.Create(ctx, PostInput{Slug: "draft", Title: "Draft"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetPublished(ctx, "draft"); !errors.Is(err, usecaseErrors.ErrPostNotFound) {
		t.Errorf("draft GetPublished error = %v, want ErrPostNotFound", err)
	}

	if _, err := svc.Create(ctx, PostInput{Slug: "live", Title: "Live", Published: true}); err != nil {
		t.Fatal(err)
	}
	first, err := svc.GetPublished(ctx, "live")
	if err != nil {
		t.Fatal(err)
	}
	if first.PublishedAt == nil {
		t.Error("PublishedAt not stamped")
	}

	repo.remove("live")
	cachedPost, err := svc.GetPublished(ctx, "live")
	if err != nil {
		t.Fatalf("cached GetPublished error = %v", err)
	}
	if cachedPost.Title != "Live" {
		t.Errorf("cached Title = %q", cachedPost.Title)
	}
}

func TestPostService_UpdateInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newTestPostService(t, 0)

	if _, err := svc.Create(ctx, PostInput{Slug: "guide", Title: "Old", Published: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetPublished(ctx, "guide"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get(ctx, cacheKey(postKind, "guide")); !ok {
		t.Fatal("published post was not cached")
	}

	if _, err := svc.Update(ctx, "guide", PostInput{Title: "New", Published: true}); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get(ctx, cacheKey(postKind, "guide")); ok {
		t.Error("cache entry survived the update")
	}

	got, err := svc.GetPublished(ctx, "guide")
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "New" {
		t.Errorf("Title = %q, want New", got.Title)
	}
}

func TestPostService_UpdateRenameAndPublishedAt(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPostService(t, 0)

	created, err := svc.Create(ctx, PostInput{Slug: "a", Title: "A", Published: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, PostInput{Slug: "b", Title: "B"}); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Update(ctx, "a", PostInput{Slug: "b", Title: "A"}); !errors.Is(err, usecaseErrors.ErrSlugTaken) {
		t.Errorf("rename onto taken slug error = %v, want ErrSlugTaken", err)
	}

	svc.now = func() time.Time { return created.PublishedAt.Add(time.Hour) }
	renamed, err := svc.Update(ctx, "a", PostInput{Slug: "a-renamed", Title: "A", Published: true})
	if err != nil {
		t.Fatal(err)
	}
	if renamed.Slug != "a-renamed" {
		t.Errorf("Slug = %q", renamed.Slug)
	}
	if !renamed.PublishedAt.Equal(*created.PublishedAt) {
		t.Errorf("PublishedAt moved from %v to %v", created.PublishedAt, renamed.PublishedAt)
	}
	if _, err := svc.Get(ctx, "a"); !errors.Is(err, usecaseErrors.ErrPostNotFound) {
		t.Errorf("old slug lookup error = %v, want ErrPostNotFound", err)
	}
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPostService(t, 0)

	if _, err := svc.Create(ctx, PostInput{Slug: "gone", Title: "Gone"}); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, "gone"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Get(ctx, "gone"); !errors.Is(err, usecaseErrors.ErrPostNotFound) {
		t.Errorf("Get after delete error = %v", err)
	}
	if err := svc.Delete(ctx, "gone"); !errors.Is(err, usecaseErrors.ErrPostNotFound) {
		t.Errorf("second Delete error = %v, want ErrPostNotFound", err)
	}
}

func TestPostService_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestPostService(t, 0)
	boom := errors.New("connection reset")
	repo.err = boom

	tests := []struct {
		name   string
		call   func() error
		wantOp string
	}{
		{"create", func() error { _, err := svc.Create(ctx, PostInput{Title: "Hello"}); return err }, "check slug"},
		{"list", func() error { _, _, err := svc.List(ctx, repositories.ContentFilters{}); return err }, "list posts"},
		{"get", func() error { _, err := svc.Get(ctx, "hello"); return err }, "get post"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var storeErr *StoreError
			if !errors.As(err, &storeErr) || storeErr.Op != tt.wantOp {
				t.Fatalf("error = %v, want StoreError %q", err, tt.wantOp)
			}
			if !errors.Is(err, boom) {
				t.Errorf("error %v does not wrap the repository error", err)
			}
		})
	}
}
