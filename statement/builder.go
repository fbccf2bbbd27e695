// Package statement composes encoded terms into complete SPARQL update and
// query text. Every statement it produces is prefixed with the fixed
// vocabulary prefix header and is immutable once built.
package statement

import (
	"github.com/c360/rdfstore/vocabulary"
)

// Insert composes an INSERT DATA statement for a single triple. The object
// term must already be in SPARQL term syntax (see rdf.EncodeObject).
func Insert(subject, predicate, term string) string {
	return vocabulary.PrefixHeader() +
		"INSERT DATA {<" + subject + "> <" + predicate + "> " + term + " .}"
}

// Delete composes a DELETE DATA statement for a single triple. The object
// term must already be in SPARQL term syntax.
func Delete(subject, predicate, term string) string {
	return vocabulary.PrefixHeader() +
		"DELETE DATA {<" + subject + "> <" + predicate + "> " + term + " .}"
}

// DeleteAllOutbound composes a DELETE WHERE statement removing every triple
// where the node is the subject.
func DeleteAllOutbound(subject string) string {
	return vocabulary.PrefixHeader() +
		"DELETE WHERE {<" + subject + "> ?p ?o .}"
}

// DeleteAllInbound composes a DELETE WHERE statement removing every triple
// where the node is the object.
func DeleteAllInbound(subject string) string {
	return vocabulary.PrefixHeader() +
		"DELETE WHERE {?s ?p <" + subject + "> .}"
}

// DeleteByPredicate composes a DELETE WHERE statement removing every triple
// with the given subject and predicate, regardless of object.
func DeleteByPredicate(subject, predicate string) string {
	return vocabulary.PrefixHeader() +
		"DELETE WHERE {<" + subject + "> <" + predicate + "> ?o .}"
}
