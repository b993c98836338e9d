package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/inventario-stock/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los campos con su nombre JSON.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// checkStruct valida los tags `validate` del struct y acumula los fallos en verr.
func checkStruct(s any, verr *domain.ValidationError) {
	err := validate.Struct(s)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("_", "inválido")
		return
	}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), ruleOf(fe.Tag(), fe.Param()))
	}
}

// checkVar valida un valor suelto (campos opcionales de los updates).
func checkVar(field string, value any, tag string, verr *domain.ValidationError) {
	err := validate.Var(value, tag)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		verr.Add(field, ruleOf(fieldErrs[0].Tag(), fieldErrs[0].Param()))
		return
	}
	verr.Add(field, "inválido")
}

func ruleOf(tag, param string) string {
	if param == "" {
		return tag
	}
	return tag + "=" + param
}

// IsUUID indica si s es un UUID válido (para parámetros de ruta).
func IsUUID(s string) bool {
	return validate.Var(s, "required,uuid") == nil
}
