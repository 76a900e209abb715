package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadContentConfig_Default(t *testing.T) {
	cfg, err := LoadContentConfig("../../data/content.yaml")
	if err != nil {
		t.Fatalf("Failed to load content.yaml: %v", err)
	}

	if cfg.Metadata.Title != "BARDZO WAŻNY LINK" {
		t.Errorf("Metadata.Title = %q", cfg.Metadata.Title)
	}
	if !strings.HasPrefix(cfg.Question, "Czy będziesz") {
		t.Errorf("Question = %q", cfg.Question)
	}
	if cfg.Buttons.Yes == "" || cfg.Buttons.No != "Nie" {
		t.Errorf("Buttons = %+v", cfg.Buttons)
	}
	if cfg.Success.MainMessage == "" {
		t.Errorf("Success.MainMessage is empty")
	}
	if cfg.Images.HelloKitty != "Hello Kitty" || cfg.Images.HelloKittyHappy != "Happy Hello Kitty" {
		t.Errorf("Images = %+v", cfg.Images)
	}
	if !strings.HasPrefix(cfg.ImageURLs.HelloKitty, "https://") {
		t.Errorf("ImageURLs.HelloKitty = %q", cfg.ImageURLs.HelloKitty)
	}
	if cfg.WindowTitle() != cfg.Metadata.Title {
		t.Errorf("WindowTitle() = %q", cfg.WindowTitle())
	}
}

func TestParseContentConfig_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		missing string
	}{
		{
			name:    "no question",
			yaml:    "buttons: {yes: a, no: b}\nsuccess: {mainMessage: c}\n",
			missing: "question",
		},
		{
			name:    "no buttons",
			yaml:    "question: q\nsuccess: {mainMessage: c}\n",
			missing: "buttons.yes, buttons.no",
		},
		{
			name:    "blank message",
			yaml:    "question: q\nbuttons: {yes: a, no: b}\nsuccess: {mainMessage: '  '}\n",
			missing: "success.mainMessage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseContentConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.missing) {
				t.Errorf("error %q does not mention %q", err, tt.missing)
			}
		})
	}
}

func TestParseContentConfig_Minimal(t *testing.T) {
	cfg, err := ParseContentConfig([]byte("question: Will you?\nbuttons: {yes: Yes, no: No}\nsuccess: {mainMessage: Yay}\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WindowTitle() != "Will you?" {
		t.Errorf("WindowTitle() = %q, expected fallback to question", cfg.WindowTitle())
	}
	if cfg.ImageURLs.HelloKitty != "" {
		t.Errorf("ImageURLs.HelloKitty = %q, expected empty", cfg.ImageURLs.HelloKitty)
	}
}

func TestParseContentConfig_InvalidYAML(t *testing.T) {
	if _, err := ParseContentConfig([]byte("question: [unclosed")); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestLoadContentConfig_FileOverride(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "content.yaml")
	content := "question: \"Will you be my Valentine?\"\nbuttons: {yes: \"Yes\", no: \"No\"}\nsuccess: {mainMessage: \"Love you\"}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	cfg, err := LoadContentConfig(path)
	if err != nil {
		t.Fatalf("LoadContentConfig failed: %v", err)
	}
	if cfg.Buttons.No != "No" {
		t.Errorf("Buttons.No = %q, expected %q", cfg.Buttons.No, "No")
	}
}

func TestLoadContentConfig_NotFound(t *testing.T) {
	if _, err := LoadContentConfig("nonexistent/content.yaml"); err == nil {
		t.Errorf("expected error for missing file")
	}
}
