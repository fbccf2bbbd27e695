package rdfstore

import (
	"context"
	"fmt"
	"time"

	"github.com/c360/rdfstore/config"
	"github.com/c360/rdfstore/errors"
	"github.com/c360/rdfstore/metric"
	"github.com/c360/rdfstore/pkg/minter"
	"github.com/c360/rdfstore/rdf"
	"github.com/c360/rdfstore/results"
	"github.com/c360/rdfstore/statement"
	"github.com/c360/rdfstore/transport"
	"github.com/c360/rdfstore/vocabulary"
)

// Transport executes finished SPARQL statements against the store.
// transport.Client satisfies it; tests substitute fakes.
type Transport interface {
	Query(ctx context.Context, query string) (*results.Response, error)
	Update(ctx context.Context, body, securityLabel string) (string, error)
}

// RdfService is the client facade. It sequences encoding, statement building
// and transport for each operation. Immutable after construction; safe for
// concurrent use.
type RdfService struct {
	transport     Transport
	minter        minter.Minter
	metrics       *metric.Metrics
	resourceStub  string
	securityLabel string
}

// Option configures an RdfService during construction.
type Option func(*RdfService)

// WithTransport substitutes the HTTP transport, typically for tests.
func WithTransport(t Transport) Option {
	return func(s *RdfService) {
		if t != nil {
			s.transport = t
		}
	}
}

// WithMinter substitutes the URI minter used by Instantiate.
func WithMinter(m minter.Minter) Option {
	return func(s *RdfService) {
		if m != nil {
			s.minter = m
		}
	}
}

// WithMetrics attaches Prometheus instrumentation. Without it operations run
// unrecorded.
func WithMetrics(m *metric.Metrics) Option {
	return func(s *RdfService) {
		s.metrics = m
	}
}

// New builds an RdfService from a validated configuration.
func New(cfg *config.Config, opts ...Option) (*RdfService, error) {
	if cfg == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("nil config"), "RdfService", "New", "build service")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &RdfService{
		transport: transport.New(
			cfg.Endpoint.Query,
			cfg.Endpoint.Update,
			transport.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
		),
		minter:        minter.UUIDMinter{},
		resourceStub:  cfg.ResourceStub,
		securityLabel: cfg.SecurityLabel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CallOption adjusts a single operation.
type CallOption func(*callSettings)

type callSettings struct {
	securityLabel string
}

// WithSecurityLabel overrides the service-level security label for one call.
func WithSecurityLabel(label string) CallOption {
	return func(cs *callSettings) {
		cs.securityLabel = label
	}
}

func (s *RdfService) settings(opts []CallOption) callSettings {
	cs := callSettings{securityLabel: s.securityLabel}
	for _, opt := range opts {
		opt(&cs)
	}
	return cs
}

// InsertTriple encodes the triple's object and issues an INSERT DATA update.
func (s *RdfService) InsertTriple(ctx context.Context, t rdf.Triple, opts ...CallOption) error {
	return s.observe("insertTriple", func() error {
		if err := requireTriple("InsertTriple", t); err != nil {
			return err
		}
		term, err := rdf.EncodeTriple(t)
		if err != nil {
			return errors.WrapInvalid(err, "RdfService", "InsertTriple", "encode object")
		}
		s.metrics.CountStatement("insert")
		return s.update(ctx, "InsertTriple", statement.Insert(t.Subject, t.Predicate, term), opts)
	})
}

// DeleteTriple encodes the triple's object and issues a DELETE DATA update.
func (s *RdfService) DeleteTriple(ctx context.Context, t rdf.Triple, opts ...CallOption) error {
	return s.observe("deleteTriple", func() error {
		if err := requireTriple("DeleteTriple", t); err != nil {
			return err
		}
		term, err := rdf.EncodeTriple(t)
		if err != nil {
			return errors.WrapInvalid(err, "RdfService", "DeleteTriple", "encode object")
		}
		s.metrics.CountStatement("delete")
		return s.update(ctx, "DeleteTriple", statement.Delete(t.Subject, t.Predicate, term), opts)
	})
}

// Instantiate asserts uri rdf:type class. When uri is empty a new resource
// URI is minted from the configured stub. Returns the URI used.
func (s *RdfService) Instantiate(ctx context.Context, class, uri string, opts ...CallOption) (string, error) {
	err := s.observe("instantiate", func() error {
		if class == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: class", rdf.ErrMissingArgument),
				"RdfService", "Instantiate", "validate arguments")
		}
		if uri == "" {
			uri = s.minter.MintURI(s.resourceStub)
		}
		s.metrics.CountStatement("insert")
		return s.update(ctx, "Instantiate",
			statement.Insert(uri, vocabulary.RdfType, "<"+class+">"), opts)
	})
	if err != nil {
		return "", err
	}
	return uri, nil
}

// AddLabel asserts an rdfs:label literal on uri.
func (s *RdfService) AddLabel(ctx context.Context, uri, text string, opts ...CallOption) error {
	return s.observe("addLabel", func() error {
		return s.insertLiteral(ctx, "AddLabel", uri, vocabulary.RdfsLabel, text, "", opts)
	})
}

// AddComment asserts an rdfs:comment literal on uri.
func (s *RdfService) AddComment(ctx context.Context, uri, text string, opts ...CallOption) error {
	return s.observe("addComment", func() error {
		return s.insertLiteral(ctx, "AddComment", uri, vocabulary.RdfsComment, text, "", opts)
	})
}

// AddLiteral asserts an arbitrary literal, optionally datatype-tagged. When
// replace is true any existing values for the predicate are removed first via
// a DELETE WHERE; a failed deletion aborts the insert. All arguments are
// validated and the literal encoded before either statement is dispatched, so
// a validation failure never leaves a partial deletion behind.
func (s *RdfService) AddLiteral(ctx context.Context, uri, predicate, text, datatype string, replace bool, opts ...CallOption) error {
	return s.observe("addLiteral", func() error {
		if predicate == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: predicate", rdf.ErrMissingArgument),
				"RdfService", "AddLiteral", "validate arguments")
		}
		term, err := encodeLiteral("AddLiteral", uri, text, datatype)
		if err != nil {
			return err
		}
		if replace {
			s.metrics.CountStatement("delete_where")
			if err := s.update(ctx, "AddLiteral", statement.DeleteByPredicate(uri, predicate), opts); err != nil {
				return err
			}
		}
		s.metrics.CountStatement("insert")
		return s.update(ctx, "AddLiteral", statement.Insert(uri, predicate, term), opts)
	})
}

// GetRelated returns the objects reachable from uri through predicate or any
// declared subproperty of it, in result order.
func (s *RdfService) GetRelated(ctx context.Context, uri, predicate string) ([]string, error) {
	var related []string
	err := s.observe("getRelated", func() error {
		query, err := statement.Related(uri, predicate)
		if err != nil {
			return errors.WrapInvalid(err, "RdfService", "GetRelated", "build query")
		}
		s.metrics.CountStatement("select")
		resp, err := s.transport.Query(ctx, query)
		if err != nil {
			s.metrics.CountTransportError("query")
			return errors.Wrap(err, "RdfService", "GetRelated", "execute query")
		}
		related = resp.Column(statement.RelatedVar)
		return nil
	})
	return related, err
}

// GetRelating returns the subjects pointing at uri through predicate or any
// declared subproperty of it, in result order.
func (s *RdfService) GetRelating(ctx context.Context, uri, predicate string) ([]string, error) {
	var relating []string
	err := s.observe("getRelating", func() error {
		query, err := statement.Relating(uri, predicate)
		if err != nil {
			return errors.WrapInvalid(err, "RdfService", "GetRelating", "build query")
		}
		s.metrics.CountStatement("select")
		resp, err := s.transport.Query(ctx, query)
		if err != nil {
			s.metrics.CountTransportError("query")
			return errors.Wrap(err, "RdfService", "GetRelating", "execute query")
		}
		relating = resp.Column(statement.RelatingVar)
		return nil
	})
	return relating, err
}

// DeleteNode removes every statement with uri in the subject position, and,
// unless ignoreInbound is set, every statement with uri in the object
// position. Both deletions are issued and awaited even when the first fails;
// the first error is reported.
func (s *RdfService) DeleteNode(ctx context.Context, uri string, ignoreInbound bool, opts ...CallOption) error {
	return s.observe("deleteNode", func() error {
		if uri == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: uri", rdf.ErrMissingArgument),
				"RdfService", "DeleteNode", "validate arguments")
		}

		s.metrics.CountStatement("delete_where")
		firstErr := s.update(ctx, "DeleteNode", statement.DeleteAllOutbound(uri), opts)

		if !ignoreInbound {
			s.metrics.CountStatement("delete_where")
			err := s.update(ctx, "DeleteNode", statement.DeleteAllInbound(uri), opts)
			if firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	})
}

func (s *RdfService) insertLiteral(ctx context.Context, method, uri, predicate, text, datatype string, opts []CallOption) error {
	term, err := encodeLiteral(method, uri, text, datatype)
	if err != nil {
		return err
	}
	s.metrics.CountStatement("insert")
	return s.update(ctx, method, statement.Insert(uri, predicate, term), opts)
}

// encodeLiteral validates a literal helper's arguments and renders the object
// term. Runs before any statement is dispatched.
func encodeLiteral(method, uri, text, datatype string) (string, error) {
	if uri == "" {
		return "", errors.WrapInvalid(
			fmt.Errorf("%w: uri", rdf.ErrMissingArgument),
			"RdfService", method, "validate arguments")
	}
	if text == "" {
		return "", errors.WrapInvalid(
			fmt.Errorf("%w: empty text", rdf.ErrInvalidLiteral),
			"RdfService", method, "validate arguments")
	}
	term, err := rdf.EncodeObject(text, rdf.ObjectLiteral, datatype)
	if err != nil {
		return "", errors.WrapInvalid(err, "RdfService", method, "encode object")
	}
	return term, nil
}

func (s *RdfService) update(ctx context.Context, method, body string, opts []CallOption) error {
	cs := s.settings(opts)
	if _, err := s.transport.Update(ctx, body, cs.securityLabel); err != nil {
		s.metrics.CountTransportError("update")
		return errors.Wrap(err, "RdfService", method, "execute update")
	}
	return nil
}

func (s *RdfService) observe(operation string, fn func() error) error {
	start := time.Now()
	err := fn()

	status := "success"
	if err != nil {
		status = "error"
	}
	s.metrics.ObserveOperation(operation, status, time.Since(start).Seconds())
	return err
}

func requireTriple(method string, t rdf.Triple) error {
	fields := []struct {
		name, value string
	}{
		{"subject", t.Subject},
		{"predicate", t.Predicate},
	}
	// Empty literal text is a valid term; only reference objects must name a
	// resource.
	if t.ObjectType != rdf.ObjectLiteral {
		fields = append(fields, struct{ name, value string }{"object", t.Object})
	}
	for _, field := range fields {
		if field.value == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: %s", rdf.ErrMissingArgument, field.name),
				"RdfService", method, "validate arguments")
		}
	}
	return nil
}
