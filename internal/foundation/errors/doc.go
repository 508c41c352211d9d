// Package errors provides the classified error primitives used across docwidgets.
//
// A ClassifiedError carries a category (config, validation, network, render, ...),
// a severity and structured context. Categories drive CLI exit codes; severities
// drive log levels.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryConfig, "unknown badge variant purple").
//		Fatal().
//		WithContext("variant", "purple").
//		WithCause(badge.ErrUnknownVariant).
//		Build()
package errors
