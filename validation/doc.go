// Package validation provides input validation for listkit registrations
// and configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// used for configuration structs; programmatic validation for runtime
// registration arguments such as view names.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Name        string `validate:"required"`
//	    Environment string `validate:"oneof=development staging production"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name)
//	v.Identifier("name", name)
//	err := v.Error()
package validation
