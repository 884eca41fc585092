package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/agency-cms/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/agency-cms/internal/usecase/errors"
)

// FAQShortageError is returned when publishing a record with fewer FAQ
// pairs than required.
type FAQShortageError struct {
	Have int
	Want int
}

func (e *FAQShortageError) Error() string {
	return fmt.Sprintf("%d FAQ pairs, %d required to publish", e.Have, e.Want)
}

func (e *FAQShortageError) Unwrap() error {
	return usecaseErrors.ErrNotEnoughFAQs
}

// StoreError is returned when the repository fails for a reason other than
// a missing record or a slug conflict
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// checkPublishable enforces the FAQ minimum on records going live
func (b *base) checkPublishable(published bool, faqs int) error {
	if !published || b.minFAQs <= 0 || faqs >= b.minFAQs {
		return nil
	}
	return &FAQShortageError{Have: faqs, Want: b.minFAQs}
}

// resolveSlug returns the explicit slug when given, otherwise one derived
// from the fallback text. Titles with no ASCII letters get "<kind>-<random>".
func resolveSlug(explicit, fallback, kind string) (string, error) {
	if slug := strings.TrimSpace(explicit); slug != "" {
		if !entities.IsSlug(slug) {
			return "", fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidInput, entities.ErrInvalidSlug)
		}
		return slug, nil
	}
	if slug := entities.Slugify(fallback); slug != "" {
		return slug, nil
	}
	return fmt.Sprintf("%s-%s", kind, strings.SplitN(uuid.NewString(), "-", 2)[0]), nil
}

// ensureSlugFree fails with ErrSlugTaken when find locates a record
func ensureSlugFree[T any](ctx context.Context, slug string, find func(context.Context, string) (*T, error)) error {
	_, err := find(ctx, slug)
	if err == nil {
		return fmt.Errorf("%w: %s", usecaseErrors.ErrSlugTaken, slug)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return &StoreError{Op: "check slug", Err: err}
}

// storeError translates persistence errors shared by all repositories
func storeError(op, slug string, err error, notFound error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", notFound, slug)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s", usecaseErrors.ErrSlugTaken, slug)
	default:
		return &StoreError{Op: op, Err: err}
	}
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func cacheKey(kind, slug string) string {
	return kind + ":" + slug
}

// cached reads a JSON payload from the cache. Cache failures count as misses.
func cached[T any](ctx context.Context, b *base, key string) (*T, bool) {
	if b.cache == nil {
		return nil, false
	}
	raw, ok, err := b.cache.Get(ctx, key)
	if err != nil {
		b.logger.Warn("cache.get.failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		b.logger.Warn("cache.decode.failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &v, true
}

func (b *base) remember(ctx context.Context, key string, v interface{}) {
	if b.cache == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		b.logger.Warn("cache.encode.failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := b.cache.Set(ctx, key, string(payload), b.cacheTTL); err != nil {
		b.logger.Warn("cache.set.failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidate drops the public cache entries of a record. Failures are
// logged; stale entries expire with the TTL.
func (b *base) invalidate(ctx context.Context, kind string, slugs ...string) {
	if b.cache == nil || len(slugs) == 0 {
		return
	}
	keys := make([]string, 0, len(slugs))
	for _, s := range slugs {
		keys = append(keys, cacheKey(kind, s))
	}
	if err := b.cache.Delete(ctx, keys...); err != nil {
		b.logger.Error("cache.invalidate.failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
