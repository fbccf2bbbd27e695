// Package vocabulary provides the fixed namespace and datatype tables used by
// every statement and query the client produces.
//
// # Philosophy: Constant Data, No Behavior
//
// The vocabulary is process-wide immutable data. Prefix declarations, well-known
// predicate and class IRIs, and the enumerated XSD datatype set are compile-time
// constants; no instance of the client ever modifies them. This keeps statement
// construction deterministic and makes the prefix header byte-identical across
// every update and query sent to the store.
//
// # Contents
//
//   - Namespace IRIs and the PREFIX header block (namespaces.go)
//   - Well-known W3C predicate and class IRIs (standards.go)
//   - The enumerated xsd: datatype set accepted for typed literals (datatypes.go)
//
// # Usage
//
//	header := vocabulary.PrefixHeader()
//	if !vocabulary.IsDatatype("xsd:dateTime") { ... }
//	typePred := vocabulary.RdfType
package vocabulary
