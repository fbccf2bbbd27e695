package vocabulary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixHeader(t *testing.T) {
	header := PrefixHeader()

	expected := []string{
		"PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>",
		"PREFIX dc: <http://purl.org/dc/elements/1.1/>",
		"PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>",
		"PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>",
		"PREFIX owl: <http://www.w3.org/2002/07/owl#>",
		"PREFIX c360: <https://rdfstore.c360.io/ontology#>",
	}

	for _, decl := range expected {
		assert.Contains(t, header, decl)
	}

	// One declaration per line, trailing newline so statement text can be
	// appended directly.
	lines := strings.Split(strings.TrimRight(header, "\n"), "\n")
	assert.Len(t, lines, len(expected))
	assert.True(t, strings.HasSuffix(header, ">\n"))
}

func TestPrefixHeaderStable(t *testing.T) {
	// The header is fixed data; repeated calls must be byte-identical.
	assert.Equal(t, PrefixHeader(), PrefixHeader())
}

func TestNamespaceFor(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected string
	}{
		{
			name:     "xsd prefix",
			label:    "xsd",
			expected: "http://www.w3.org/2001/XMLSchema#",
		},
		{
			name:     "rdfs prefix",
			label:    "rdfs",
			expected: "http://www.w3.org/2000/01/rdf-schema#",
		},
		{
			name:     "domain prefix",
			label:    "c360",
			expected: "https://rdfstore.c360.io/ontology#",
		},
		{
			name:     "unknown prefix returns empty",
			label:    "foaf",
			expected: "",
		},
		{
			name:     "empty label returns empty",
			label:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NamespaceFor(tt.label))
		})
	}
}

func TestDomainIRI(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected string
	}{
		{
			name:     "class term",
			term:     "Sensor",
			expected: "https://rdfstore.c360.io/ontology#Sensor",
		},
		{
			name:     "property term",
			term:     "observedBy",
			expected: "https://rdfstore.c360.io/ontology#observedBy",
		},
		{
			name:     "whitespace is trimmed",
			term:     "  Sensor  ",
			expected: "https://rdfstore.c360.io/ontology#Sensor",
		},
		{
			name:     "empty term returns empty",
			term:     "",
			expected: "",
		},
		{
			name:     "whitespace-only term returns empty",
			term:     "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DomainIRI(tt.term))
		})
	}
}

func TestStandardIRIs(t *testing.T) {
	// Well-known predicates resolve inside their declared namespaces.
	assert.Equal(t, "http://www.w3.org/1999/02/22-rdf-syntax-ns#type", RdfType)
	assert.Equal(t, "http://www.w3.org/2000/01/rdf-schema#label", RdfsLabel)
	assert.Equal(t, "http://www.w3.org/2000/01/rdf-schema#comment", RdfsComment)
	assert.Equal(t, "http://www.w3.org/2000/01/rdf-schema#subPropertyOf", RdfsSubPropertyOf)
	assert.True(t, strings.HasPrefix(OwlSameAs, OWLNamespace))
	assert.True(t, strings.HasPrefix(DcTitle, DCNamespace))
}

func BenchmarkPrefixHeader(b *testing.B) {
	for i := 0; i < b.N; i++ {
		PrefixHeader()
	}
}
