package validator

import "testing"

type slugged struct {
	Slug string `validate:"omitempty,slug"`
}

func TestValidate_Slug(t *testing.T) {
	v := New()

	tests := []struct {
		slug  string
		valid bool
	}{
		{"", true},
		{"seo-audit", true},
		{"video-2024-recap", true},
		{"abc", true},
		{"Upper-Case", false},
		{"double--dash", false},
		{"-leading", false},
		{"trailing-", false},
		{"with space", false},
		{"ไทย", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			err := v.Validate(slugged{Slug: tt.slug})
			if tt.valid && err != nil {
				t.Errorf("Validate(%q) error = %v", tt.slug, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("Validate(%q) accepted an invalid slug", tt.slug)
			}
		})
	}
}
