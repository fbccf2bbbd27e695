package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeObject(t *testing.T) {
	tests := []struct {
		name       string
		object     string
		objectType ObjectType
		datatype   string
		expected   string
		wantErr    error
	}{
		{
			name:       "uri object is wrapped verbatim",
			object:     "http://example.org/thing",
			objectType: ObjectURI,
			expected:   "<http://example.org/thing>",
		},
		{
			name:     "unset object type defaults to uri",
			object:   "http://example.org/thing",
			expected: "<http://example.org/thing>",
		},
		{
			name:       "plain literal",
			object:     "hello",
			objectType: ObjectLiteral,
			expected:   `"hello"`,
		},
		{
			name:       "typed literal",
			object:     "42",
			objectType: ObjectLiteral,
			datatype:   "xsd:integer",
			expected:   `"42"^^xsd:integer`,
		},
		{
			name:       "dateTime literal",
			object:     "2024-01-01T00:00:00Z",
			objectType: ObjectLiteral,
			datatype:   "xsd:dateTime",
			expected:   `"2024-01-01T00:00:00Z"^^xsd:dateTime`,
		},
		{
			name:       "empty literal text is still a term",
			object:     "",
			objectType: ObjectLiteral,
			expected:   `""`,
		},
		{
			name:       "datatype outside the set rejected",
			object:     "42",
			objectType: ObjectLiteral,
			datatype:   "xsd:notreal",
			wantErr:    ErrInvalidDatatype,
		},
		{
			name:       "datatype ignored check happens only for literals",
			object:     "http://example.org/thing",
			objectType: ObjectURI,
			datatype:   "xsd:notreal",
			expected:   "<http://example.org/thing>",
		},
		{
			name:       "blank node kind rejected",
			object:     "b0",
			objectType: ObjectType("BLANK"),
			wantErr:    ErrInvalidObjectType,
		},
		{
			name:       "lowercase kind rejected",
			object:     "http://example.org/thing",
			objectType: ObjectType("uri"),
			wantErr:    ErrInvalidObjectType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, err := EncodeObject(tt.object, tt.objectType, tt.datatype)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, term)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, term)
		})
	}
}

func TestEncodeObjectNoQuoteEscaping(t *testing.T) {
	// Embedded quotes pass through unmodified: a documented limitation, not a
	// feature. Callers must pre-sanitize.
	term, err := EncodeObject(`say "hi"`, ObjectLiteral, "")
	require.NoError(t, err)
	assert.Equal(t, `"say "hi""`, term)
}

func TestEncodeTriple(t *testing.T) {
	term, err := EncodeTriple(LiteralTriple("http://x", "http://y", "3.14", "xsd:double"))
	require.NoError(t, err)
	assert.Equal(t, `"3.14"^^xsd:double`, term)

	term, err = EncodeTriple(URITriple("http://x", "http://y", "http://z"))
	require.NoError(t, err)
	assert.Equal(t, "<http://z>", term)
}

func BenchmarkEncodeObject(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = EncodeObject("42", ObjectLiteral, "xsd:integer")
	}
}
