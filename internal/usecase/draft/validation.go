package draft

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/errors"
)

// FirstStep and LastStep bound the step cursor.
const (
	FirstStep = 1
	LastStep  = 4
)

// stepRules lists, per step, the ProfileDraft fields whose validate tags must pass
// before leaving the step. Step 4 is review only.
var stepRules = map[int][]string{
	1: {"FirstName", "LastName", "DateOfBirth"},
	2: {"Email", "ParentEmail"},
	3: {"ClassGrade"},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// RequiredFields returns the stored names of the fields checked before leaving step.
func RequiredFields(step int) []string {
	names := make([]string, 0, len(stepRules[step]))
	typ := reflect.TypeOf(entity.ProfileDraft{})
	for _, field := range stepRules[step] {
		if sf, ok := typ.FieldByName(field); ok {
			names = append(names, strings.SplitN(sf.Tag.Get("json"), ",", 2)[0])
		}
	}

	return names
}

// validateStep checks one step's rules. Values are never modified.
func validateStep(d *entity.ProfileDraft, step int) error {
	fields, ok := stepRules[step]
	if !ok || len(fields) == 0 {
		return nil
	}

	err := validate.StructPartial(d, fields...)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validate step")
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}

	return domainerrors.NewStepIncompleteError(step, missing)
}

// validateThrough checks every step from the first up to and including last.
func validateThrough(d *entity.ProfileDraft, last int) error {
	for step := FirstStep; step <= last; step++ {
		if err := validateStep(d, step); err != nil {
			return err
		}
	}

	return nil
}
