package config

import (
	"github.com/alexisbeaulieu97/ribbon/internal/badge"
	"github.com/alexisbeaulieu97/ribbon/internal/view"
)

// Scene is a validated configuration converted into widget inputs.
type Scene struct {
	Corner     view.Corner
	Appearance badge.Appearance
	Badges     []badge.Props
}

// Load parses, validates and resolves the configuration at path.
func Load(path string) (*Scene, error) {
	cfg, err := ParseConfig(path)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve converts the document into a Scene.
func (c *Config) Resolve() (*Scene, error) {
	if err := ValidateConfig(c); err != nil {
		return nil, err
	}

	corner, err := view.ParseCorner(c.Corner)
	if err != nil {
		return nil, err
	}
	appearance, err := appearanceTable(c.Appearance)
	if err != nil {
		return nil, err
	}

	scene := &Scene{Corner: corner, Appearance: appearance}
	for _, spec := range c.Badges {
		props, err := spec.props()
		if err != nil {
			return nil, err
		}
		scene.Badges = append(scene.Badges, props)
	}
	return scene, nil
}

func (s BadgeSpec) props() (badge.Props, error) {
	severity, err := badge.ParseSeverity(s.Severity)
	if err != nil {
		return badge.Props{}, err
	}

	props := badge.Props{
		Label:    s.Label,
		Severity: severity,
		Detail:   badge.NoDetail{},
	}
	if s.Detail != nil {
		props.Detail = badge.WithDetail{Short: s.Detail.Short, Full: s.Detail.Full}
	}
	if len(s.Attrs) > 0 {
		props.Attrs = make(badge.Attributes, len(s.Attrs))
		for k, v := range s.Attrs {
			props.Attrs[k] = v
		}
	}
	return props, nil
}
