// Package errors provides standardized error handling for rdfstore components.
//
// # Philosophy: Classify, Don't Retry
//
// Every error in the client falls into one of three behavioral classes:
//
//   - Transient: temporary conditions (endpoint outage, timeout) that a caller
//     MAY choose to retry. The client itself never retries: every operation is
//     at-most-once from the client's perspective.
//   - Invalid: bad input or configuration. Retrying cannot help; the caller
//     must fix the request. All triple validation failures are Invalid.
//   - Fatal: unrecoverable conditions that should stop processing.
//
// # Wrapping Pattern
//
// Errors are wrapped with component and operation context following the
// pattern "component.method: action failed: <cause>":
//
//	if err != nil {
//	    return errors.WrapInvalid(err, "RdfService", "AddLabel", "encode literal")
//	}
//
// # Classification
//
// Use IsTransient, IsInvalid, and IsFatal to branch on behavior, or Classify
// to get the class directly. Classification checks wrapped ClassifiedError
// values first, then known sentinel errors, then falls back to message
// heuristics.
//
// Validation sentinels for the triple model itself (ErrInvalidObjectType,
// ErrInvalidDatatype, ErrInvalidLiteral, ErrMissingArgument) live in the rdf
// package next to the types they guard; this package supplies the behavioral
// classification they are wrapped with at the service boundary.
package errors
