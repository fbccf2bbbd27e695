package statement

import (
	"fmt"

	"github.com/c360/rdfstore/rdf"
	"github.com/c360/rdfstore/vocabulary"
)

// Bound variable names used by the relationship queries. The result decoder
// extracts these columns from the store's response.
const (
	// RelatedVar is the object-position variable bound by Related queries.
	RelatedVar = "related"

	// RelatingVar is the subject-position variable bound by Relating queries.
	RelatingVar = "relating"
)

// Related composes a SELECT query for forward relationships: every value
// reachable from uri via the given predicate or any of its declared
// sub-predicates (zero-or-more rdfs:subPropertyOf steps).
//
// Fails with rdf.ErrMissingArgument when uri or predicate is empty.
func Related(uri, predicate string) (string, error) {
	if err := requireArgs(uri, predicate); err != nil {
		return "", err
	}
	return vocabulary.PrefixHeader() +
		"SELECT ?" + RelatedVar + " WHERE {<" + uri + "> ?pred ?" + RelatedVar + " . " +
		"?pred rdfs:subPropertyOf* <" + predicate + "> .}", nil
}

// Relating composes a SELECT query for inverse relationships: every subject
// that points at uri via the given predicate or any of its declared
// sub-predicates.
//
// Fails with rdf.ErrMissingArgument when uri or predicate is empty.
func Relating(uri, predicate string) (string, error) {
	if err := requireArgs(uri, predicate); err != nil {
		return "", err
	}
	return vocabulary.PrefixHeader() +
		"SELECT ?" + RelatingVar + " WHERE {?" + RelatingVar + " ?pred <" + uri + "> . " +
		"?pred rdfs:subPropertyOf* <" + predicate + "> .}", nil
}

func requireArgs(uri, predicate string) error {
	if uri == "" {
		return fmt.Errorf("%w: uri", rdf.ErrMissingArgument)
	}
	if predicate == "" {
		return fmt.Errorf("%w: predicate", rdf.ErrMissingArgument)
	}
	return nil
}
