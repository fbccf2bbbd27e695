// Package rdf provides the triple model and object-term encoding for SPARQL
// statement construction.
package rdf

import "errors"

// Sentinel errors for triple validation and encoding.
// All are raised synchronously, before any statement is built or any network
// call is attempted, and are wrapped with behavioral classification (Invalid)
// at the service layer.
var (
	// ErrInvalidObjectType indicates an object type other than URI or LITERAL
	ErrInvalidObjectType = errors.New("invalid object type")

	// ErrInvalidDatatype indicates a datatype outside the enumerated XSD set
	ErrInvalidDatatype = errors.New("invalid datatype")

	// ErrInvalidLiteral indicates empty or absent literal text on a literal helper
	ErrInvalidLiteral = errors.New("invalid literal")

	// ErrMissingArgument indicates an absent uri or predicate on a relationship lookup
	ErrMissingArgument = errors.New("missing argument")
)
