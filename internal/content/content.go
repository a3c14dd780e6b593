// Package content holds the hand-authored portfolio data rendered by the
// site: profile, biography, skills, projects and links.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultPortfolio []byte

// Profile is the hero banner data. Roles is the typing phrase cycle.
type Profile struct {
	Name      string   `yaml:"name"`
	ShortName string   `yaml:"short_name"`
	Location  string   `yaml:"location"`
	Greeting  string   `yaml:"greeting"`
	Summary   string   `yaml:"summary"`
	Roles     []string `yaml:"roles"`
	Tagline   string   `yaml:"tagline"`
}

type Stat struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
}

// About is the biography section. Bio is markdown.
type About struct {
	Bio        string   `yaml:"bio"`
	Highlights []string `yaml:"highlights"`
	Stats      []Stat   `yaml:"stats"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Level int    `yaml:"level"`
	Color string `yaml:"color"`
}

type SkillCategory struct {
	Title  string  `yaml:"title"`
	Skills []Skill `yaml:"skills"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	LiveURL     string   `yaml:"live_url"`
	GithubURL   string   `yaml:"github_url"`
	Color       string   `yaml:"color"`
}

type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Icon string `yaml:"icon"`
}

type NavLink struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// Chat holds the floating chat launcher handles.
type Chat struct {
	WhatsAppNumber string `yaml:"whatsapp_number"`
	MessengerUser  string `yaml:"messenger_user"`
	Greeting       string `yaml:"greeting"`
}

// Portfolio is the complete page content.
type Portfolio struct {
	Profile     Profile         `yaml:"profile"`
	About       About           `yaml:"about"`
	Skills      []SkillCategory `yaml:"skills"`
	OtherSkills []string        `yaml:"other_skills"`
	Projects    []Project       `yaml:"projects"`
	Social      []Link          `yaml:"social"`
	Nav         []NavLink       `yaml:"nav"`
	Chat        Chat            `yaml:"chat"`

	bioHTML template.HTML
}

// Default returns the built-in portfolio content.
func Default() (*Portfolio, error) {
	return Parse(defaultPortfolio)
}

// Load reads portfolio content from path. An empty path returns the
// built-in content.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes, validates and prerenders portfolio YAML.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse content yaml: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	bio, err := renderMarkdown(p.About.Bio)
	if err != nil {
		return nil, fmt.Errorf("render bio: %w", err)
	}
	p.bioHTML = bio
	return &p, nil
}

// Validate checks the invariants the page relies on.
func (p *Portfolio) Validate() error {
	if p.Profile.Name == "" {
		return errors.New("profile name is required")
	}
	if len(p.Profile.Roles) == 0 {
		return errors.New("profile needs at least one role")
	}
	for _, category := range p.Skills {
		for _, skill := range category.Skills {
			if skill.Level < 0 || skill.Level > 100 {
				return fmt.Errorf("skill %q level %d outside 0-100", skill.Name, skill.Level)
			}
		}
	}
	return nil
}

// BioHTML returns the biography rendered from markdown.
func (p *Portfolio) BioHTML() template.HTML {
	return p.bioHTML
}

// FirstRole is what the hero shows before the typing stream connects.
func (p *Portfolio) FirstRole() string {
	if len(p.Profile.Roles) == 0 {
		return ""
	}
	return p.Profile.Roles[0]
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Typographer),
)

// renderMarkdown converts trusted content markdown to HTML. Raw HTML in
// the source is omitted by goldmark's default renderer.
func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
