package rdf

import (
	"fmt"

	"github.com/c360/rdfstore/vocabulary"
)

// EncodeObject validates an object's declared kind and renders it into SPARQL
// term syntax.
//
// An unset objectType is treated as URI. URI objects are wrapped in angle
// brackets verbatim; the caller is responsible for supplying well-formed URI
// text. Literal objects are wrapped in double quotes, with ^^datatype appended
// when a datatype from the enumerated xsd set is supplied.
//
// Quote characters embedded in literal text are not escaped. Callers must
// pre-sanitize text containing quotes.
func EncodeObject(object string, objectType ObjectType, datatype string) (string, error) {
	switch objectType {
	case ObjectURI, "":
		return "<" + object + ">", nil
	case ObjectLiteral:
		if datatype != "" {
			if !vocabulary.IsDatatype(datatype) {
				return "", fmt.Errorf("%w: %q is not in the xsd datatype set", ErrInvalidDatatype, datatype)
			}
			return `"` + object + `"^^` + datatype, nil
		}
		return `"` + object + `"`, nil
	default:
		return "", fmt.Errorf("%w: %q (want URI or LITERAL)", ErrInvalidObjectType, objectType)
	}
}

// EncodeTriple renders a triple's object into SPARQL term syntax.
func EncodeTriple(t Triple) (string, error) {
	return EncodeObject(t.Object, t.ObjectType, t.Datatype)
}
