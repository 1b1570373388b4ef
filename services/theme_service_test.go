package services

import (
	"context"
	"testing"

	"lezzet.link/models"
)

func TestGetThemeCreatesDefaultPalette(t *testing.T) {
	setupTestDB(t)
	service := NewThemeService()

	theme, err := service.GetTheme(context.Background())
	if err != nil {
		t.Fatalf("GetTheme() error = %v", err)
	}
	defaults := models.DefaultTheme()
	if theme.ID != 1 {
		t.Errorf("ID = %d, tekil kayıt 1 olmalı", theme.ID)
	}
	if theme.Primary != defaults.Primary || theme.Mode != defaults.Mode {
		t.Errorf("varsayılan palet beklenirdi: %+v", theme)
	}
}

func TestUpdateThemeValidatesMode(t *testing.T) {
	setupTestDB(t)
	service := NewThemeService()
	ctx := context.Background()

	input := ThemeInput{
		Primary:    "#FF0000",
		Secondary:  "#00FF00",
		Background: "#FFFFFF",
		Text:       "#000000",
		Mode:       "neon", // tanınmayan mod yok sayılır
	}
	theme, err := service.UpdateTheme(ctx, input)
	if err != nil {
		t.Fatalf("UpdateTheme() error = %v", err)
	}
	if theme.Primary != "#FF0000" {
		t.Errorf("Primary = %q", theme.Primary)
	}
	if theme.Mode != models.DefaultTheme().Mode {
		t.Errorf("Mode = %q, mevcut mod korunmalıydı", theme.Mode)
	}

	input.Mode = models.ThemeModeLight
	theme, err = service.UpdateTheme(ctx, input)
	if err != nil {
		t.Fatalf("UpdateTheme() error = %v", err)
	}
	if theme.Mode != models.ThemeModeLight {
		t.Errorf("Mode = %q, want %q", theme.Mode, models.ThemeModeLight)
	}
}
