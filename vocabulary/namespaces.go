package vocabulary

import "strings"

// Namespace IRIs for the fixed prefix table.
//
// Every statement and query produced by the client is prefixed with PREFIX
// declarations for exactly these namespaces, so prefixed names such as
// xsd:integer or rdfs:subPropertyOf resolve identically on every request.
const (
	// XSDNamespace is the XML Schema datatype namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// DCNamespace is the Dublin Core elements namespace.
	DCNamespace = "http://purl.org/dc/elements/1.1/"

	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// OWLNamespace is the Web Ontology Language namespace.
	OWLNamespace = "http://www.w3.org/2002/07/owl#"

	// DomainNamespace is the c360 ontology namespace for domain terms.
	DomainNamespace = "https://rdfstore.c360.io/ontology#"
)

// prefixes maps prefix labels to their namespace IRIs, in the order they are
// declared in the header.
var prefixes = []struct {
	Label string
	IRI   string
}{
	{"xsd", XSDNamespace},
	{"dc", DCNamespace},
	{"rdf", RDFNamespace},
	{"rdfs", RDFSNamespace},
	{"owl", OWLNamespace},
	{"c360", DomainNamespace},
}

// prefixHeader is rendered once at package initialization; the header is
// identical for every statement the client builds.
var prefixHeader = buildPrefixHeader()

func buildPrefixHeader() string {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString("PREFIX ")
		b.WriteString(p.Label)
		b.WriteString(": <")
		b.WriteString(p.IRI)
		b.WriteString(">\n")
	}
	return b.String()
}

// PrefixHeader returns the fixed block of PREFIX declarations prepended to
// every update statement and query.
func PrefixHeader() string {
	return prefixHeader
}

// NamespaceFor returns the namespace IRI registered for a prefix label.
// Returns empty string for unknown labels.
func NamespaceFor(label string) string {
	for _, p := range prefixes {
		if p.Label == label {
			return p.IRI
		}
	}
	return ""
}

// DomainIRI builds a full IRI for a term in the domain namespace.
//
// Example:
//
//	DomainIRI("Sensor")  // "https://rdfstore.c360.io/ontology#Sensor"
//
// Returns empty string for empty input.
func DomainIRI(term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return ""
	}
	return DomainNamespace + term
}
