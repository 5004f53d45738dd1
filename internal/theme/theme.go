// Package theme bundles border, gradient, and layout choices into named
// presets, loadable from YAML files or taken from the built-in set. The
// theme layer owns every name-to-value resolution: the engine packages only
// ever see resolved styles and colors.
package theme

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	frescoerrors "github.com/frescoterm/fresco/pkg/errors"
)

// Theme is one preset as written in a theme file. Colors and Rainbow form
// the color source: one color is a flat fill, two or more make a gradient,
// and rainbow selects the fixed spectrum instead.
type Theme struct {
	Name      string   `yaml:"name" validate:"required"`
	Border    string   `yaml:"border" validate:"required"`
	Colors    []string `yaml:"colors" validate:"required_without=Rainbow,omitempty,min=1,dive,required"`
	Rainbow   bool     `yaml:"rainbow"`
	Direction string   `yaml:"direction" validate:"omitempty,oneof=vertical horizontal diagonal"`
	Target    string   `yaml:"target" validate:"omitempty,oneof=content border both"`
	Space     string   `yaml:"space" validate:"omitempty,oneof=rgb lab hcl"`
	Padding   int      `yaml:"padding" validate:"min=0"`
	Align     string   `yaml:"align" validate:"omitempty,oneof=left center right"`
	Title     string   `yaml:"title"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks the structural rules of a theme. Color strings are only
// validated syntactically here; Resolve parses them for real.
func Validate(t *Theme) error {
	if err := validatorInstance().Struct(t); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return frescoerrors.NewValidationError(
				first.Field(),
				fmt.Sprintf("failed %q constraint", first.Tag()),
				err,
			)
		}
		return frescoerrors.NewValidationError("", err.Error(), err)
	}
	if t.Rainbow && len(t.Colors) > 0 {
		return frescoerrors.NewValidationError("colors", "rainbow themes must not also list colors", nil)
	}
	return nil
}
