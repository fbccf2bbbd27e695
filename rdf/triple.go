package rdf

import "encoding/json"

// ObjectType identifies whether a triple's object is a resource reference or a
// plain value. This enum provides type-safe object kinds for statement
// construction; blank nodes are not a supported kind.
type ObjectType string

const (
	// ObjectURI indicates the object is a reference to another resource.
	// This is the default when no object type is specified.
	ObjectURI ObjectType = "URI"

	// ObjectLiteral indicates the object is a plain value, optionally typed
	// with an xsd datatype.
	ObjectLiteral ObjectType = "LITERAL"
)

// String returns the string representation of the ObjectType.
func (ot ObjectType) String() string {
	return string(ot)
}

// MarshalJSON implements json.Marshaler to ensure ObjectType serializes as a string.
func (ot ObjectType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(ot))
}

// UnmarshalJSON implements json.Unmarshaler to deserialize ObjectType from string.
func (ot *ObjectType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*ot = ObjectType(s)
	return nil
}

// IsValid checks if the ObjectType is one of the defined constants.
// The empty string is valid: it defaults to URI during encoding.
func (ot ObjectType) IsValid() bool {
	switch ot {
	case ObjectURI, ObjectLiteral, "":
		return true
	default:
		return false
	}
}

// Triple represents a subject-predicate-object statement, the atomic unit the
// client writes to and deletes from the store.
//
// Subject and Predicate are always URIs. Object is interpreted according to
// ObjectType; Datatype is only meaningful for LITERAL objects and must be a
// member of the enumerated xsd datatype set when present.
type Triple struct {
	Subject    string     `json:"subject"`
	Predicate  string     `json:"predicate"`
	Object     string     `json:"object"`
	ObjectType ObjectType `json:"object_type,omitempty"`
	Datatype   string     `json:"datatype,omitempty"`
}

// URITriple builds a triple whose object references another resource.
func URITriple(subject, predicate, object string) Triple {
	return Triple{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
	}
}

// LiteralTriple builds a triple whose object is a plain value. An empty
// datatype produces an untyped literal.
func LiteralTriple(subject, predicate, text, datatype string) Triple {
	return Triple{
		Subject:    subject,
		Predicate:  predicate,
		Object:     text,
		ObjectType: ObjectLiteral,
		Datatype:   datatype,
	}
}
