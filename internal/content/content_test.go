package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	if p.Profile.Name != "Farooque Alam" {
		t.Errorf("name = %q", p.Profile.Name)
	}
	wantRoles := []string{"Frontend Developer", "Backend Developer", "Full Stack Developer"}
	if strings.Join(p.Profile.Roles, ",") != strings.Join(wantRoles, ",") {
		t.Errorf("roles = %v, want %v", p.Profile.Roles, wantRoles)
	}
	if p.FirstRole() != "Frontend Developer" {
		t.Errorf("FirstRole() = %q", p.FirstRole())
	}
	if len(p.Skills) != 3 {
		t.Errorf("expected 3 skill categories, got %d", len(p.Skills))
	}
	if len(p.Projects) != 4 {
		t.Errorf("expected 4 projects, got %d", len(p.Projects))
	}
	if len(p.Social) != 4 {
		t.Errorf("expected 4 social links, got %d", len(p.Social))
	}
	if p.Chat.MessengerUser == "" {
		t.Error("expected chat messenger user")
	}
}

func TestBioRenderedAsHTML(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	bio := string(p.BioHTML())
	if !strings.Contains(bio, "<strong>Farooque Alam</strong>") {
		t.Errorf("bio missing bold name: %s", bio)
	}
	if strings.Count(bio, "<p>") != 3 {
		t.Errorf("expected 3 paragraphs, got %d", strings.Count(bio, "<p>"))
	}
}

func TestParseRejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no name", "profile:\n  roles: [a]\n", "name is required"},
		{"no roles", "profile:\n  name: X\n", "at least one role"},
		{"bad level", "profile:\n  name: X\n  roles: [a]\nskills:\n  - title: T\n    skills:\n      - {name: Go, level: 120}\n", "outside 0-100"},
		{"bad yaml", "profile: [", "parse content yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	data := "profile:\n  name: Ada\n  roles: [Engineer]\nabout:\n  bio: Hello *world*\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Profile.Name != "Ada" {
		t.Errorf("name = %q", p.Profile.Name)
	}
	if !strings.Contains(string(p.BioHTML()), "<em>world</em>") {
		t.Errorf("bio = %q", p.BioHTML())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
