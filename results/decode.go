// Package results decodes the SPARQL 1.1 JSON Results format into plain rows
// and value sequences.
package results

import "encoding/json"

// Value is a single bound term in a results binding. Type distinguishes uri
// from literal terms; Datatype and Lang are populated for typed and
// language-tagged literals respectively.
type Value struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

// Binding maps a bound variable name to its value for one result row.
type Binding map[string]Value

// Head declares the variables selected by the query, in projection order.
type Head struct {
	Vars []string `json:"vars"`
}

// Results holds the raw binding rows.
type Results struct {
	Bindings []Binding `json:"bindings"`
}

// Response mirrors the standard SPARQL JSON results shape
// (head.vars / results.bindings).
type Response struct {
	Head    Head    `json:"head"`
	Results Results `json:"results"`
}

// Row is a flattened result row: bound variable name to lexical value.
type Row map[string]string

// Decode parses a SPARQL JSON results document. A body that is not valid JSON
// or lacks the conforming results.bindings shape decodes to an empty response
// rather than an error; malformed responses are treated as "no results".
func Decode(body []byte) *Response {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return &Response{}
	}
	return &resp
}

// Rows flattens the response into plain rows, using the declared variable
// list to decide which keys to extract. Variables absent from a binding are
// omitted from its row.
func (r *Response) Rows() []Row {
	if r == nil || len(r.Results.Bindings) == 0 {
		return []Row{}
	}

	vars := r.Head.Vars
	rows := make([]Row, 0, len(r.Results.Bindings))
	for _, binding := range r.Results.Bindings {
		row := make(Row, len(vars))
		for _, v := range vars {
			if value, ok := binding[v]; ok {
				row[v] = value.Value
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// First returns the first flattened row, or nil when the response holds no
// bindings.
func (r *Response) First() Row {
	rows := r.Rows()
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

// Column returns the values bound to one variable, in the order returned by
// the store. Duplicates are not suppressed; rows without the variable are
// skipped.
func (r *Response) Column(name string) []string {
	if r == nil {
		return []string{}
	}

	values := make([]string, 0, len(r.Results.Bindings))
	for _, binding := range r.Results.Bindings {
		if value, ok := binding[name]; ok {
			values = append(values, value.Value)
		}
	}
	return values
}
