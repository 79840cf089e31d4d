// Package validation checks decoded provider options and service settings
// against struct tags using go-playground/validator.
//
//	type options struct {
//	    TrackingID string `mapstructure:"trackingId" validate:"required"`
//	}
//	err := validation.Validate(opts)
//
// Failures come back as an errors.AppError with code INVALID_INPUT and a
// "fields" detail listing every offending option by its settings key.
package validation
