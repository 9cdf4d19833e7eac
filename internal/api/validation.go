package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/unitip/unitip-api/internal/api/shared"
)

// newValidator builds the request validator. Field names in validation
// errors use the JSON tag so they can be returned as error paths.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessage maps a failed validation to its user-facing message.
// The messages match what the mobile and web clients already display.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		return "Nama pengguna tidak boleh kosong!"
	case "gender":
		return "Jenis kelamin tidak boleh kosong!"
	case "title":
		return "Judul tidak boleh kosong!"
	case "description":
		return "Deskripsi tidak boleh kosong!"
	case "type":
		return "Tipe penawaran tidak valid!"
	case "available_until":
		return "Waktu untuk penawaran tidak boleh kosong!"
	case "price":
		if fe.Tag() == "gte" {
			return "Biaya tidak boleh negatif!"
		}
		return "Biaya tidak boleh kosong!"
	}
	return fe.Field() + " is invalid"
}

// validateRequest validates the given struct and converts failures into
// the ordered per-field error list of the 400 response body.
// Returns nil if the struct is valid.
func validateRequest(v *validator.Validate, req interface{}) []shared.FieldError {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []shared.FieldError{{Path: "body", Message: "Invalid request format"}}
	}

	fieldErrs := make([]shared.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, shared.FieldError{
			Path:    fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return fieldErrs
}
