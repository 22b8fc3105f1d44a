package config

// Config is the YAML document describing the badges a host shows and how they look.
type Config struct {
	Corner     string            `yaml:"corner,omitempty" validate:"omitempty,corner"`
	Appearance map[string]string `yaml:"appearance,omitempty"`
	Badges     []BadgeSpec       `yaml:"badges" validate:"required,min=1,dive"`
}

// BadgeSpec describes a single badge. Severity is checked against the
// appearance table rather than a tag so unknown values surface as
// configuration errors.
type BadgeSpec struct {
	Label    string            `yaml:"label" validate:"required,notblank,max=64"`
	Severity string            `yaml:"severity,omitempty"`
	Detail   *DetailSpec       `yaml:"detail,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty" validate:"omitempty,dive,keys,notblank,endkeys"`
}

// DetailSpec is the optional detail block of a badge.
type DetailSpec struct {
	Short string `yaml:"short"`
	Full  string `yaml:"full,omitempty"`
}
