package attendance

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/hadir/core"
)

var (
	statusTag  = "status"
	statusText = "status must be one of: حاضر, غائب, متأخر, غائب بعذر"
)

// register custom validators
func init() {
	_ = core.Validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, statusTag, statusText)
}

// statusValidation checks that the field holds a known Status
func statusValidation(fl validator.FieldLevel) bool {
	if st, ok := fl.Field().Interface().(Status); ok {
		return st.Valid()
	}
	return false
}
