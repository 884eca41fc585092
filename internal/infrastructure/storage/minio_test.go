package storage

import (
	"context"
	"testing"
)

func TestObjectURL_PublicBase(t *testing.T) {
	m := &MinIOClient{bucket: "agency-cms", publicURL: "https://cdn.example.com"}

	got, err := m.ObjectURL(context.Background(), "uploads/2024/05/my photo.png")
	if err != nil {
		t.Fatal(err)
	}
	want := "https://cdn.example.com/agency-cms/uploads/2024/05/my%20photo.png"
	if got != want {
		t.Errorf("ObjectURL() = %q, want %q", got, want)
	}
}
