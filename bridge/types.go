// Package bridge exposes the rdfstore facade over NATS request/reply. Each
// mutation subject carries a JSON request and answers with a
// MutationResponse, so non-Go services can drive the triplestore without
// speaking SPARQL.
package bridge

import (
	"time"

	"github.com/c360/rdfstore/rdf"
)

// Mutation Request Types

// InsertTripleRequest asserts one triple
type InsertTripleRequest struct {
	Triple        rdf.Triple `json:"triple"`
	SecurityLabel string     `json:"security_label,omitempty"`
	TraceID       string     `json:"trace_id,omitempty"`
	RequestID     string     `json:"request_id,omitempty"`
}

// DeleteTripleRequest retracts one triple
type DeleteTripleRequest struct {
	Triple        rdf.Triple `json:"triple"`
	SecurityLabel string     `json:"security_label,omitempty"`
	TraceID       string     `json:"trace_id,omitempty"`
	RequestID     string     `json:"request_id,omitempty"`
}

// InstantiateRequest creates a typed resource; URI may be empty to mint one
type InstantiateRequest struct {
	Class         string `json:"class"`
	URI           string `json:"uri,omitempty"`
	SecurityLabel string `json:"security_label,omitempty"`
	TraceID       string `json:"trace_id,omitempty"`
	RequestID     string `json:"request_id,omitempty"`
}

// DeleteNodeRequest removes every statement touching a node
type DeleteNodeRequest struct {
	URI           string `json:"uri"`
	IgnoreInbound bool   `json:"ignore_inbound,omitempty"`
	SecurityLabel string `json:"security_label,omitempty"`
	TraceID       string `json:"trace_id,omitempty"`
	RequestID     string `json:"request_id,omitempty"`
}

// Mutation Response Types

// MutationResponse is the base response for all mutations
type MutationResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	TraceID   string `json:"trace_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Timestamp int64  `json:"timestamp"` // Unix nano timestamp
}

// InstantiateResponse carries the URI the store ended up using
type InstantiateResponse struct {
	MutationResponse
	URI string `json:"uri,omitempty"`
}

// NewMutationResponse creates a base mutation response
func NewMutationResponse(success bool, err error, traceID, requestID string) MutationResponse {
	resp := MutationResponse{
		Success:   success,
		TraceID:   traceID,
		RequestID: requestID,
		Timestamp: time.Now().UnixNano(),
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
