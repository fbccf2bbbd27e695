package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuerySendsEscapedQuery(t *testing.T) {
	var gotQuery, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/sparql-results+json")
		_, _ = w.Write([]byte(`{
			"head": {"vars": ["related"]},
			"results": {"bindings": [{"related": {"type": "uri", "value": "http://a"}}]}
		}`))
	}))
	defer server.Close()

	client := New(server.URL, server.URL)
	query := `SELECT ?related WHERE {<http://n> ?pred ?related .}`

	resp, err := client.Query(context.Background(), query)
	require.NoError(t, err)

	// net/url unescapes on parse: a round-trip through the query string must
	// recover the original text, spaces and angle brackets included.
	assert.Equal(t, query, gotQuery)
	assert.Equal(t, "application/sparql-results+json", gotAccept)
	assert.Equal(t, []string{"http://a"}, resp.Column("related"))
}

func TestQueryNon2xxPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "parse error", http.StatusBadRequest)
	}))
	defer server.Close()

	client := New(server.URL, server.URL)
	resp, err := client.Query(context.Background(), "SELECT ?x WHERE {?x ?y ?z .}")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Nil(t, resp)
}

func TestQueryMalformedBodyIsEmptyNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>definitely not sparql json</html>"))
	}))
	defer server.Close()

	client := New(server.URL, server.URL)
	resp, err := client.Query(context.Background(), "SELECT ?x WHERE {?x ?y ?z .}")

	require.NoError(t, err)
	assert.Empty(t, resp.Rows())
}

func TestUpdatePostsSparqlUpdate(t *testing.T) {
	var gotBody, gotContentType, gotLabel, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotContentType = r.Header.Get("Content-Type")
		gotLabel = r.Header.Get(SecurityLabelHeader)
		gotMethod = r.Method
		_, _ = w.Write([]byte("update accepted"))
	}))
	defer server.Close()

	client := New(server.URL, server.URL)
	stmt := "INSERT DATA {<http://x> <http://y> <http://z> .}"

	text, err := client.Update(context.Background(), stmt, "nationality=UK")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, stmt, gotBody)
	assert.Equal(t, "application/sparql-update", gotContentType)
	assert.Equal(t, "nationality=UK", gotLabel)
	assert.Equal(t, "update accepted", text)
}

func TestUpdateOmitsEmptySecurityLabel(t *testing.T) {
	var labelPresent bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, labelPresent = r.Header[SecurityLabelHeader]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL, server.URL)
	_, err := client.Update(context.Background(), "DELETE WHERE {<http://x> ?p ?o .}", "")

	require.NoError(t, err)
	assert.False(t, labelPresent, "empty security label must not produce a header")
}

func TestUpdateNon2xxPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := New(server.URL, server.URL)
	_, err := client.Update(context.Background(), "INSERT DATA {<http://x> <http://y> <http://z> .}", "secret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := New(server.URL, server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Query(ctx, "SELECT ?x WHERE {?x ?y ?z .}")
	assert.Error(t, err)
}

func TestWithHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: time.Second}
	client := New("http://q", "http://u", WithHTTPClient(custom))
	assert.Same(t, custom, client.httpClient)

	// nil client is ignored rather than breaking the default.
	client = New("http://q", "http://u", WithHTTPClient(nil))
	assert.NotNil(t, client.httpClient)
}
