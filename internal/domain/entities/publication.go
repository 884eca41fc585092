package entities

import "time"

// Publication tracks whether a record is visible on the public site
type Publication struct {
	Published   bool       `gorm:"not null;default:false;index" json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// SetPublished flips the published flag. PublishedAt is stamped the first
// time a record goes live and kept across later unpublish/publish cycles.
func (p *Publication) SetPublished(published bool, now time.Time) {
	p.Published = published
	if published && p.PublishedAt == nil {
		t := now.UTC()
		p.PublishedAt = &t
	}
}

// IsLive reports whether the record may be served publicly
func (p Publication) IsLive() bool {
	return p.Published
}
