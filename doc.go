// Package rdfstore is a convenience client for SPARQL 1.1 triplestores. It
// layers a small, opinionated API over the store's query and update
// endpoints so application code works with triples and URIs instead of
// hand-assembled SPARQL text.
//
// # Architecture
//
// The client is built from single-concern packages sequenced by the
// RdfService facade:
//
//   - rdf: triple model and SPARQL term encoding (URI vs typed literal)
//   - statement: INSERT DATA / DELETE DATA / DELETE WHERE construction
//     and the subproperty-aware SELECT queries
//   - results: SPARQL 1.1 JSON results decoding
//   - transport: the HTTP client for the two endpoints
//   - vocabulary: namespace prefixes, standard terms, xsd datatypes
//
// Every facade operation validates its arguments synchronously before any
// network call, so malformed input never reaches the store.
//
// # Usage
//
//	cfg := config.DefaultConfig()
//	cfg.Endpoint.Query = "http://localhost:3030/ds/query"
//	cfg.Endpoint.Update = "http://localhost:3030/ds/update"
//
//	svc, err := rdfstore.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	uri, err := svc.Instantiate(ctx, "https://example.org/ontology#Sensor", "")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := svc.AddLabel(ctx, uri, "example resource"); err != nil {
//		log.Fatal(err)
//	}
//
// GetRelated and GetRelating resolve relationships through
// rdfs:subPropertyOf*, so querying for a broad predicate also finds
// statements asserted with any of its declared subproperties.
//
// Operations run at-most-once: the client never retries. Failures come back
// classified (see the errors package) so callers can decide what to do.
package rdfstore
