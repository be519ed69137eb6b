package validator

import (
	"github.com/go-playground/validator/v10"

	"dogroom/pkg/logger"
	"dogroom/pkg/model"
	"dogroom/pkg/validate"
)

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (v *BookingValidator) ValidateCreate(req *model.BookingRequest) error {
	return validate.Struct(v.validate, req)
}
