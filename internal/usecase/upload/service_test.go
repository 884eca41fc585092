package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	usecaseErrors "github.com/johnquangdev/agency-cms/internal/usecase/errors"
)

type fakeStore struct {
	objectName  string
	contentType string
	data        []byte
	err         error
}

func (f *fakeStore) Put(_ context.Context, objectName string, reader io.Reader, _ int64, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.objectName, f.contentType, f.data = objectName, contentType, data
	return "https://cdn.example.com/agency-cms/" + objectName, nil
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestUploadService_StoresSniffedImage(t *testing.T) {
	store := &fakeStore{}
	svc := NewUploadService(store, 1<<20, nil)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }

	res, err := svc.Upload(context.Background(), Input{
		Filename: "cover.txt",
		Size:     int64(len(pngHeader)),
		Body:     bytes.NewReader(pngHeader),
	})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if res.ContentType != "image/png" || store.contentType != "image/png" {
		t.Errorf("content type = %q / %q, want image/png", res.ContentType, store.contentType)
	}
	if !strings.HasPrefix(res.ObjectName, "uploads/2024/05/") || !strings.HasSuffix(res.ObjectName, ".png") {
		t.Errorf("ObjectName = %q", res.ObjectName)
	}
	if res.URL != "https://cdn.example.com/agency-cms/"+res.ObjectName {
		t.Errorf("URL = %q", res.URL)
	}
	if !bytes.Equal(store.data, pngHeader) {
		t.Error("stored bytes differ from the upload")
	}
}

func TestUploadService_Rejects(t *testing.T) {
	svc := NewUploadService(&fakeStore{}, 8, nil)

	tests := []struct {
		name  string
		input Input
		want  error
	}{
		{"empty", Input{Size: 0, Body: strings.NewReader("")}, usecaseErrors.ErrUploadEmpty},
		{"too large", Input{Size: 9, Body: strings.NewReader("123456789")}, usecaseErrors.ErrUploadTooLarge},
		{"script", Input{Size: 8, Body: strings.NewReader("#!/bin/s")}, usecaseErrors.ErrUploadContentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Upload(context.Background(), tt.input); !errors.Is(err, tt.want) {
				t.Errorf("Upload() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUploadService_StoreFailure(t *testing.T) {
	boom := errors.New("minio down")
	svc := NewUploadService(&fakeStore{err: boom}, 0, nil)

	_, err := svc.Upload(context.Background(), Input{Size: int64(len(pngHeader)), Body: bytes.NewReader(pngHeader)})
	if !errors.Is(err, boom) {
		t.Errorf("Upload() error = %v, want store error", err)
	}
}
