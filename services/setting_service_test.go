package services

import (
	"context"
	"testing"

	"lezzet.link/models"
)

func TestGetSettingCreatesSingleton(t *testing.T) {
	setupTestDB(t)
	t.Setenv("WHATSAPP_NUMBER", "905551112233")

	service := NewSettingService()
	ctx := context.Background()

	setting, err := service.GetSetting(ctx)
	if err != nil {
		t.Fatalf("GetSetting() error = %v", err)
	}
	if setting.ID != 1 {
		t.Errorf("ID = %d, tekil kayıt 1 olmalı", setting.ID)
	}
	if setting.WhatsappNumber != "905551112233" {
		t.Errorf("WhatsappNumber = %q", setting.WhatsappNumber)
	}
	if setting.MessageTemplate != models.DefaultMessageTemplate {
		t.Errorf("MessageTemplate = %q", setting.MessageTemplate)
	}

	// Tekrarlı çağrılar aynı kaydı döndürmeli.
	again, err := service.GetSetting(ctx)
	if err != nil {
		t.Fatalf("GetSetting() error = %v", err)
	}
	if again.ID != setting.ID {
		t.Errorf("ikinci çağrı farklı kayıt döndürdü: %d", again.ID)
	}
}

func TestUpdateSetting(t *testing.T) {
	setupTestDB(t)
	service := NewSettingService()
	ctx := context.Background()

	updated, err := service.UpdateSetting(ctx, "904447778899", "Merhaba {{name}}")
	if err != nil {
		t.Fatalf("UpdateSetting() error = %v", err)
	}
	if updated.WhatsappNumber != "904447778899" || updated.MessageTemplate != "Merhaba {{name}}" {
		t.Errorf("güncel kayıt = %+v", updated)
	}

	reloaded, err := service.GetSetting(ctx)
	if err != nil {
		t.Fatalf("GetSetting() error = %v", err)
	}
	if reloaded.WhatsappNumber != "904447778899" {
		t.Errorf("güncelleme kalıcı değil: %q", reloaded.WhatsappNumber)
	}
}
