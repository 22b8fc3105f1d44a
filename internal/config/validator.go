package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/ribbon/internal/badge"
	"github.com/alexisbeaulieu97/ribbon/internal/view"
	ribbonerrors "github.com/alexisbeaulieu97/ribbon/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("corner", func(fl validator.FieldLevel) bool {
			_, err := view.ParseCorner(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and semantic validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return ribbonerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	appearance, err := appearanceTable(cfg.Appearance)
	if err != nil {
		return err
	}

	for i, spec := range cfg.Badges {
		if err := validateBadge(spec, appearance); err != nil {
			return fmt.Errorf("%s: %w", fieldForBadge(i), err)
		}
	}

	return nil
}

func validateBadge(spec BadgeSpec, appearance badge.Appearance) error {
	props, err := spec.props()
	if err != nil {
		return err
	}
	return props.Validate(appearance)
}

func appearanceTable(raw map[string]string) (badge.Appearance, error) {
	if len(raw) == 0 {
		return badge.DefaultAppearance(), nil
	}

	table := make(badge.Appearance, len(raw))
	for key, color := range raw {
		table[badge.Severity(key)] = strings.TrimSpace(color)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// convertValidationError normalizes validator errors into ribbon validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return ribbonerrors.NewValidationError(field, msg, err)
	}

	return ribbonerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts[1:] {
		lowered = append(lowered, strings.ToLower(part))
	}
	if len(lowered) == 0 {
		return strings.ToLower(ns)
	}
	return strings.Join(lowered, ".")
}

func fieldForBadge(index int) string {
	return fmt.Sprintf("badges[%d]", index)
}
