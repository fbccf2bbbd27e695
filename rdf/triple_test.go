package rdf

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectTypeIsValid(t *testing.T) {
	tests := []struct {
		name       string
		objectType ObjectType
		expected   bool
	}{
		{"URI is valid", ObjectURI, true},
		{"LITERAL is valid", ObjectLiteral, true},
		{"empty defaults to URI and is valid", ObjectType(""), true},
		{"BLANK is invalid", ObjectType("BLANK"), false},
		{"lowercase is invalid", ObjectType("literal"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.objectType.IsValid())
		})
	}
}

func TestObjectTypeJSONRoundTrip(t *testing.T) {
	triple := LiteralTriple("http://s", "http://p", "v", "xsd:string")

	data, err := json.Marshal(triple)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"object_type":"LITERAL"`)

	var decoded Triple
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, triple, decoded)
}

func TestURITripleDefaults(t *testing.T) {
	triple := URITriple("http://s", "http://p", "http://o")

	// Object type left unset so the encoder applies the URI default.
	assert.Equal(t, ObjectType(""), triple.ObjectType)
	assert.Empty(t, triple.Datatype)
}

func TestTripleOmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(URITriple("http://s", "http://p", "http://o"))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "object_type")
	assert.NotContains(t, string(data), "datatype")
}
