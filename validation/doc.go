// Package validation provides input validation utilities.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// used for configuration structs; programmatic validation fits handler
// input checks.
//
// # Struct Tag Validation
//
//	type PublishRequest struct {
//	    Event string `validate:"required,max=64"`
//	    Data  string `validate:"required"`
//	}
//	err := validation.Validate(req)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("event", req.Event)
//	err := v.Validate()
package validation
