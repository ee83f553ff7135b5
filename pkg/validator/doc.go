// Package validator provides small declarative rules for request input.
//
// A Rule pairs a Check function with translation-friendly error metadata.
// Rules are evaluated with Apply, which collects every failure into a
// ValidationErrors value that satisfies the error interface.
//
//	err := validator.Apply(
//	    validator.RequiredQueryParam("account", account),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Messages() lists the failures in rule order
//	}
//
// ValidationErrors matches ErrValidationFailed under errors.Is.
//
// Rules hold no shared state and are safe for concurrent use.
package validator
