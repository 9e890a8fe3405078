// Package portfolio holds the static section content of the site: about,
// skills, experience, education and certifications.
package portfolio

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

// Profile is the owner's static content.
type Profile struct {
	Name           string       `yaml:"name"`
	Title          string       `yaml:"title"`
	Tagline        string       `yaml:"tagline"`
	About          string       `yaml:"about"`
	Skills         []SkillGroup `yaml:"skills"`
	Experience     []Entry      `yaml:"experience"`
	Education      []Entry      `yaml:"education"`
	Certifications []Entry      `yaml:"certifications"`
	// Highlights are shown in the projects section when no projects load.
	Highlights []Highlight `yaml:"highlights"`
}

// SkillGroup is a labelled list of skills.
type SkillGroup struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

// Entry is a job, degree or certification.
type Entry struct {
	Title        string   `yaml:"title"`
	Organization string   `yaml:"organization"`
	Start        string   `yaml:"start"`
	End          string   `yaml:"end"`
	Logo         string   `yaml:"logo"`
	Bullets      []string `yaml:"bullets"`
}

// Period formats the entry's date range.
func (e Entry) Period() string {
	switch {
	case e.Start == "" && e.End == "":
		return ""
	case e.End == "":
		return e.Start
	case e.Start == "":
		return e.End
	default:
		return e.Start + " - " + e.End
	}
}

// Highlight is a short project blurb.
type Highlight struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

// Parse decodes a profile document.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if p.Name == "" {
		return nil, errors.New("parsing profile: name is required")
	}
	return &p, nil
}

// Default returns the embedded profile.
func Default() *Profile {
	p, err := Parse(defaultProfile)
	if err != nil {
		panic(err)
	}
	return p
}

// Load reads the profile at path, or the embedded one when path is empty.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return Parse(data)
}
