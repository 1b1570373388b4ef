package services

import (
	"context"
	"testing"

	"lezzet.link/models"
)

func TestContentEditorAndPublicViews(t *testing.T) {
	setupTestDB(t)
	service := NewContentService()
	ctx := context.Background()

	// Boş veritabanında editör tüm sabit anahtarları boş gövdeyle göstermeli.
	editor, err := service.GetEditorContent(ctx)
	if err != nil {
		t.Fatalf("GetEditorContent() error = %v", err)
	}
	if len(editor) != len(models.ContentKeys) {
		t.Fatalf("editör anahtar sayısı = %d, want %d", len(editor), len(models.ContentKeys))
	}
	for _, key := range models.ContentKeys {
		if content, ok := editor[key]; !ok || content.Body != "" {
			t.Errorf("anahtar %q boş gövdeyle beklenirdi: %+v", key, content)
		}
	}

	err = service.SaveContent(ctx, map[string]string{
		"hero_title":    "Lezzetin Adresi",
		"hero_subtitle": "Her damak zevkine uygun",
	})
	if err != nil {
		t.Fatalf("SaveContent() error = %v", err)
	}

	public, err := service.GetPublicContentMap(ctx)
	if err != nil {
		t.Fatalf("GetPublicContentMap() error = %v", err)
	}
	if public["hero_title"] != "Lezzetin Adresi" {
		t.Errorf("hero_title = %q", public["hero_title"])
	}

	// Aynı anahtarı tekrar kaydetmek yeni satır açmamalı.
	if err := service.SaveContent(ctx, map[string]string{"hero_title": "Yeni Başlık"}); err != nil {
		t.Fatalf("SaveContent() error = %v", err)
	}
	public, _ = service.GetPublicContentMap(ctx)
	if public["hero_title"] != "Yeni Başlık" {
		t.Errorf("hero_title = %q, upsert beklenirdi", public["hero_title"])
	}
}
