package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sylvio143/G-stagiaire/config"
	"github.com/Sylvio143/G-stagiaire/internal/dto"
)

func newMediaService(t *testing.T) MediaService {
	t.Helper()
	cfg := &config.MediaConfig{UploadDir: t.TempDir(), MaxSizeMB: 1}
	return NewMediaService(newTestRepo(), cfg, testLogger())
}

func TestMediaUpload(t *testing.T) {
	ctx := context.Background()
	cfg := &config.MediaConfig{UploadDir: t.TempDir(), MaxSizeMB: 1}
	svc := NewMediaService(newTestRepo(), cfg, testLogger())

	content := "fake-png-bytes"
	resp, err := svc.Upload(ctx, "photo.png", "image/png", int64(len(content)), strings.NewReader(content))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if resp.Ext != "png" || resp.Mime != "image/png" {
		t.Errorf("ext/mime = %s/%s", resp.Ext, resp.Mime)
	}
	if resp.ThumbnailURL == "" || resp.MediumURL == "" {
		t.Error("variantes d'image manquantes")
	}

	entries, err := os.ReadDir(cfg.UploadDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("fichiers écrits = %d, attendu 1", len(entries))
	}
	if filepath.Ext(entries[0].Name()) != ".png" {
		t.Errorf("nom du fichier = %s", entries[0].Name())
	}
}

func TestMediaUploadLimites(t *testing.T) {
	ctx := context.Background()
	svc := newMediaService(t)

	if _, err := svc.Upload(ctx, "vide.pdf", "application/pdf", 0, strings.NewReader("")); !errors.Is(err, ErrMediaEmpty) {
		t.Errorf("taille 0: err = %v, attendu ErrMediaEmpty", err)
	}
	if _, err := svc.Upload(ctx, "gros.pdf", "application/pdf", 2*1024*1024, strings.NewReader("x")); !errors.Is(err, ErrMediaTooLarge) {
		t.Errorf("taille 2 Mo: err = %v, attendu ErrMediaTooLarge", err)
	}
}

func TestMediaStats(t *testing.T) {
	ctx := context.Background()
	svc := newMediaService(t)

	uploads := []struct {
		name, mime string
		body       string
	}{
		{"a.png", "image/png", "aaaa"},
		{"b.jpg", "image/jpeg", "bbbbbbbb"},
		{"c.pdf", "application/pdf", "cccc"},
	}
	for _, u := range uploads {
		if _, err := svc.Upload(ctx, u.name, u.mime, int64(len(u.body)), strings.NewReader(u.body)); err != nil {
			t.Fatalf("Upload %s: %v", u.name, err)
		}
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d", stats.TotalFiles)
	}
	if stats.ImageCount != 2 || stats.PdfCount != 1 {
		t.Errorf("ImageCount/PdfCount = %d/%d", stats.ImageCount, stats.PdfCount)
	}
	if stats.TotalSizeKB <= 0 {
		t.Errorf("TotalSizeKB = %f", stats.TotalSizeKB)
	}
}

func TestMediaUpdateEtRecherche(t *testing.T) {
	ctx := context.Background()
	svc := newMediaService(t)

	resp, err := svc.Upload(ctx, "rapport.pdf", "application/pdf", 4, strings.NewReader("abcd"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	newName := "rapport-final.pdf"
	alt := "rapport de stage"
	updated, err := svc.Update(ctx, resp.DocumentID, &dto.UpdateMediaRequest{Name: &newName, AlternativeText: &alt})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != newName || updated.AlternativeText != alt {
		t.Errorf("Name/AlternativeText = %s/%s", updated.Name, updated.AlternativeText)
	}

	byName, err := svc.GetByName(ctx, newName)
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if byName.DocumentID != resp.DocumentID {
		t.Errorf("DocumentID = %s, attendu %s", byName.DocumentID, resp.DocumentID)
	}

	if _, err := svc.GetByDocumentID(ctx, "inconnu"); !errors.Is(err, ErrMediaNotFound) {
		t.Errorf("documentId inconnu: err = %v", err)
	}
}
