package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360/rdfstore"
	"github.com/c360/rdfstore/errors"
	"github.com/c360/rdfstore/metric"
	"github.com/c360/rdfstore/rdf"
)

// Mutation subject suffixes, appended to the configured prefix.
const (
	SuffixInsert      = "insert"
	SuffixDelete      = "delete"
	SuffixInstantiate = "instantiate"
	SuffixDeleteNode  = "deletenode"

	// DefaultMutationTimeout bounds each store round-trip triggered by a
	// bridge message.
	DefaultMutationTimeout = 5 * time.Second
)

// Service is the slice of the facade the bridge drives.
type Service interface {
	InsertTriple(ctx context.Context, t rdf.Triple, opts ...rdfstore.CallOption) error
	DeleteTriple(ctx context.Context, t rdf.Triple, opts ...rdfstore.CallOption) error
	Instantiate(ctx context.Context, class, uri string, opts ...rdfstore.CallOption) (string, error)
	DeleteNode(ctx context.Context, uri string, ignoreInbound bool, opts ...rdfstore.CallOption) error
}

// Bridge subscribes to mutation subjects and dispatches to the facade.
type Bridge struct {
	service Service
	conn    *nats.Conn
	prefix  string
	metrics *metric.Metrics
	logger  *slog.Logger
	timeout time.Duration
	subs    []*nats.Subscription
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *metric.Metrics) Option {
	return func(b *Bridge) {
		b.metrics = m
	}
}

// WithLogger substitutes the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithTimeout overrides the per-message mutation timeout.
func WithTimeout(d time.Duration) Option {
	return func(b *Bridge) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// New creates a bridge between a NATS connection and the facade. The prefix
// roots the mutation subjects, e.g. "rdf.mutation" yields
// "rdf.mutation.insert".
func New(service Service, conn *nats.Conn, prefix string, opts ...Option) (*Bridge, error) {
	if service == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("nil service"), "Bridge", "New", "build bridge")
	}
	if prefix == "" {
		return nil, errors.WrapInvalid(
			fmt.Errorf("empty subject prefix"), "Bridge", "New", "build bridge")
	}

	b := &Bridge{
		service: service,
		conn:    conn,
		prefix:  prefix,
		logger:  slog.Default(),
		timeout: DefaultMutationTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Start subscribes to every mutation subject.
func (b *Bridge) Start() error {
	if b.conn == nil {
		return errors.WrapFatal(errors.ErrNoConnection, "Bridge", "Start", "subscribe")
	}

	handlers := map[string]nats.MsgHandler{
		b.subject(SuffixInsert):      b.handleInsert,
		b.subject(SuffixDelete):      b.handleDelete,
		b.subject(SuffixInstantiate): b.handleInstantiate,
		b.subject(SuffixDeleteNode):  b.handleDeleteNode,
	}

	for subject, handler := range handlers {
		sub, err := b.conn.Subscribe(subject, handler)
		if err != nil {
			return errors.Wrap(err, "Bridge", "Start",
				fmt.Sprintf("subscribe to %s", subject))
		}
		b.subs = append(b.subs, sub)
		b.logger.Info("subscribed to mutation subject", "subject", subject)
	}
	return nil
}

// Stop unsubscribes from every mutation subject.
func (b *Bridge) Stop() {
	for _, sub := range b.subs {
		if err := sub.Unsubscribe(); err != nil {
			b.logger.Warn("unsubscribe failed", "subject", sub.Subject, "error", err)
		}
	}
	b.subs = nil
}

func (b *Bridge) subject(suffix string) string {
	return b.prefix + "." + suffix
}

// Insert processes one insert payload and returns the reply to send. Exposed
// separately from the NATS handler so the dispatch logic is testable without
// a live connection.
func (b *Bridge) Insert(ctx context.Context, data []byte) MutationResponse {
	var req InsertTripleRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return NewMutationResponse(false, err, req.TraceID, req.RequestID)
	}
	err := b.service.InsertTriple(ctx, req.Triple, labelOpts(req.SecurityLabel)...)
	return NewMutationResponse(err == nil, err, req.TraceID, req.RequestID)
}

// Delete processes one delete payload and returns the reply to send.
func (b *Bridge) Delete(ctx context.Context, data []byte) MutationResponse {
	var req DeleteTripleRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return NewMutationResponse(false, err, req.TraceID, req.RequestID)
	}
	err := b.service.DeleteTriple(ctx, req.Triple, labelOpts(req.SecurityLabel)...)
	return NewMutationResponse(err == nil, err, req.TraceID, req.RequestID)
}

// Instantiate processes one instantiate payload and returns the reply,
// including the URI the store ended up using.
func (b *Bridge) Instantiate(ctx context.Context, data []byte) InstantiateResponse {
	var req InstantiateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return InstantiateResponse{
			MutationResponse: NewMutationResponse(false, err, req.TraceID, req.RequestID),
		}
	}
	uri, err := b.service.Instantiate(ctx, req.Class, req.URI, labelOpts(req.SecurityLabel)...)
	return InstantiateResponse{
		MutationResponse: NewMutationResponse(err == nil, err, req.TraceID, req.RequestID),
		URI:              uri,
	}
}

// DeleteNode processes one node-deletion payload and returns the reply.
func (b *Bridge) DeleteNode(ctx context.Context, data []byte) MutationResponse {
	var req DeleteNodeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return NewMutationResponse(false, err, req.TraceID, req.RequestID)
	}
	err := b.service.DeleteNode(ctx, req.URI, req.IgnoreInbound, labelOpts(req.SecurityLabel)...)
	return NewMutationResponse(err == nil, err, req.TraceID, req.RequestID)
}

func (b *Bridge) handleInsert(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	resp := b.Insert(ctx, msg.Data)
	b.respond(msg, SuffixInsert, resp.Success, resp)
}

func (b *Bridge) handleDelete(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	resp := b.Delete(ctx, msg.Data)
	b.respond(msg, SuffixDelete, resp.Success, resp)
}

func (b *Bridge) handleInstantiate(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	resp := b.Instantiate(ctx, msg.Data)
	b.respond(msg, SuffixInstantiate, resp.Success, resp)
}

func (b *Bridge) handleDeleteNode(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	resp := b.DeleteNode(ctx, msg.Data)
	b.respond(msg, SuffixDeleteNode, resp.Success, resp)
}

func (b *Bridge) respond(msg *nats.Msg, suffix string, success bool, resp any) {
	status := "success"
	if !success {
		status = "error"
	}
	b.metrics.CountBridgeMessage(b.subject(suffix), status)

	data, err := json.Marshal(resp)
	if err != nil {
		b.logger.Error("marshal reply failed", "subject", msg.Subject, "error", err)
		return
	}
	if err := msg.Respond(data); err != nil {
		b.logger.Error("reply failed", "subject", msg.Subject, "error", err)
	}
}

func labelOpts(label string) []rdfstore.CallOption {
	if label == "" {
		return nil
	}
	return []rdfstore.CallOption{rdfstore.WithSecurityLabel(label)}
}
