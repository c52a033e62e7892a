// Package project supplies the read-only portfolio dataset: an ordered list
// of project records loaded once at startup. The running UI never mutates a
// catalog; a reload from disk replaces it wholesale.
package project

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielguerrarmz/deckfolio/internal/errors"
)

// Type distinguishes the about entry from portfolio projects.
type Type string

const (
	TypeAbout   Type = "about"
	TypeProject Type = "project"
)

// Meta holds the optional metadata record shown in the content panel footer.
type Meta struct {
	Date          string   `yaml:"date,omitempty"`
	Collaborators []string `yaml:"collaborators,omitempty"`
	Tools         []string `yaml:"tools,omitempty"`
	Duration      string   `yaml:"duration,omitempty"`
}

// Project is a single portfolio entry. All fields are immutable for the
// session.
type Project struct {
	ID            string `yaml:"id"`
	Title         string `yaml:"title"`
	Type          Type   `yaml:"type"`
	Position      string `yaml:"position,omitempty"`
	Overview      string `yaml:"overview,omitempty"`
	Architecture  string `yaml:"architecture,omitempty"`
	ProductDesign string `yaml:"product_design,omitempty"`
	Software      string `yaml:"software,omitempty"`
	Meta          *Meta  `yaml:"meta,omitempty"`
	HasTimeline   bool   `yaml:"has_timeline,omitempty"`
	Link          string `yaml:"link,omitempty"`
}

// Catalog is an ordered, immutable list of projects.
type Catalog struct {
	projects []Project
}

// catalogFile is the YAML document shape.
type catalogFile struct {
	Projects []Project `yaml:"projects"`
}

// Load reads and validates a catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.NewCatalogError("", fmt.Errorf("parse: %w", err))
	}
	return New(file.Projects)
}

// LoadFile reads and validates a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewCatalogError(path, err)
	}
	defer f.Close()

	catalog, err := Load(f)
	if err != nil {
		if catErr, ok := err.(*errors.CatalogError); ok {
			catErr.Path = path
		}
		return nil, err
	}
	return catalog, nil
}

// New validates a project list and wraps it in a Catalog.
func New(projects []Project) (*Catalog, error) {
	if len(projects) == 0 {
		return nil, errors.ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(projects))
	for i := range projects {
		p := &projects[i]
		if p.ID == "" {
			return nil, errors.NewValidationError(
				fmt.Sprintf("projects[%d].id", i), "must not be empty")
		}
		if p.Title == "" {
			return nil, errors.NewValidationError(
				fmt.Sprintf("projects[%d].title", i), "must not be empty")
		}
		if seen[p.ID] {
			return nil, errors.NewValidationError(
				fmt.Sprintf("projects[%d].id", i), p.ID).WithErr(errors.ErrDuplicateProject)
		}
		seen[p.ID] = true

		switch p.Type {
		case TypeAbout, TypeProject:
		case "":
			p.Type = TypeProject
		default:
			return nil, errors.NewValidationError(
				fmt.Sprintf("projects[%d].type", i),
				fmt.Sprintf("unknown type %q", p.Type))
		}
	}

	owned := make([]Project, len(projects))
	copy(owned, projects)
	return &Catalog{projects: owned}, nil
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.projects)
}

// At returns the project at idx. ok is false when idx is out of range.
func (c *Catalog) At(idx int) (Project, bool) {
	if c == nil || idx < 0 || idx >= len(c.projects) {
		return Project{}, false
	}
	return c.projects[idx], true
}

// ByID finds a project by its ID.
func (c *Catalog) ByID(id string) (Project, error) {
	if c != nil {
		for _, p := range c.projects {
			if p.ID == id {
				return p, nil
			}
		}
	}
	return Project{}, fmt.Errorf("%q: %w", id, errors.ErrProjectNotFound)
}

// Titles returns the ordered project titles, for the dial.
func (c *Catalog) Titles() []string {
	titles := make([]string, c.Len())
	for i, p := range c.projects {
		titles[i] = p.Title
	}
	return titles
}

// ShortCode returns the LCD code for a project index: "AM" for the about
// entry at index 0, a zero-padded index otherwise.
func ShortCode(idx int) string {
	if idx == 0 {
		return "AM"
	}
	return fmt.Sprintf("%02d", idx)
}
