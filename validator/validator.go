package validator

import (
	"backoffice/errors"

	v10 "github.com/go-playground/validator/v10"
)

// dùng chung tag `binding` với gin để DTO chỉ cần khai báo rule một lần
var validate = newValidator()

func newValidator() *v10.Validate {
	v := v10.New()
	v.SetTagName("binding")
	return v
}

// ValidateStruct validate struct theo tag `binding`, dùng cho input bind
// tay (multipart form) không đi qua binding của gin
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, validationMessage(err), err)
	}
	return nil
}

// IsValidEmail kiểm tra email hợp lệ
func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func validationMessage(err error) string {
	if fieldErrs, ok := err.(v10.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required"
		case "email":
			return fe.Field() + " must be a valid email"
		case "min":
			return fe.Field() + " is too short"
		}
		return fe.Field() + " is invalid"
	}
	return "Invalid input"
}
