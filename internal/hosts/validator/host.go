package validator

import (
	"github.com/go-playground/validator/v10"

	"dogroom/pkg/logger"
	"dogroom/pkg/model"
	"dogroom/pkg/sanitizer"
	"dogroom/pkg/validate"
)

type HostValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewHostValidator(log *logger.Logger) *HostValidator {
	return &HostValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// Normalize cleans a host record at the write boundary: text fields are
// sanitized, tag-like sets are lowercased and deduplicated, and the
// location is coerced to finite coordinates once at ingestion instead of
// defensively at every read.
func (v *HostValidator) Normalize(h *model.Host) {
	h.Name = sanitizer.SanitizeText(h.Name)
	h.Bio = sanitizer.SanitizeText(h.Bio)
	h.Tags = sanitizer.SanitizeSlice(h.Tags, sanitizer.SanitizeTag)
	h.AllowedPetSizes = sanitizer.SanitizeSlice(h.AllowedPetSizes, sanitizer.SanitizeTag)
	h.HouseRules = sanitizer.SanitizeSlice(h.HouseRules, sanitizer.SanitizeText)
	h.Location = h.Location.Normalized()
}

func (v *HostValidator) Validate(h *model.Host) error {
	return validate.Struct(v.validate, h)
}
