package jsonapi

import (
	"github.com/neuronlabs/jsonapi/config"
	"github.com/neuronlabs/jsonapi/namer"
	"github.com/neuronlabs/jsonapi/query"
)

// Encoder assembles the JSON API documents. The encoder is immutable once
// created and safe for concurrent use. Derived encoders are created with the
// With, Scoped and MinimalAttributes methods.
type Encoder struct {
	cfg    *config.Encoder
	naming namer.NamingConvention

	idResolver        IDResolver
	typeResolver      TypeResolver
	implementation    ImplementationProvider
	identifierHooks   []IdentifierHook
	relationshipHooks []RelationshipHook
}

// Option is the function that sets up the encoder.
type Option func(e *Encoder)

// WithIDResolver sets the resolver for the ids of the resources not implementing Identifiable.
func WithIDResolver(resolver IDResolver) Option {
	return func(e *Encoder) {
		e.idResolver = resolver
	}
}

// WithTypeResolver sets the resolver for the types of the resources not implementing Typed.
func WithTypeResolver(resolver TypeResolver) Option {
	return func(e *Encoder) {
		e.typeResolver = resolver
	}
}

// WithImplementationProvider sets the provider of the 'jsonapi' document member.
func WithImplementationProvider(provider ImplementationProvider) Option {
	return func(e *Encoder) {
		e.implementation = provider
	}
}

// WithIdentifierHooks adds the hooks applied to every identifier rendered in a relationship linkage.
func WithIdentifierHooks(hooks ...IdentifierHook) Option {
	return func(e *Encoder) {
		e.identifierHooks = append(e.identifierHooks, hooks...)
	}
}

// WithRelationshipHooks adds the hooks applied to every rendered relationship object.
func WithRelationshipHooks(hooks ...RelationshipHook) Option {
	return func(e *Encoder) {
		e.relationshipHooks = append(e.relationshipHooks, hooks...)
	}
}

// WithMinimalAttributes sets the minimal attributes mode.
func WithMinimalAttributes(minimal bool) Option {
	return func(e *Encoder) {
		e.cfg.MinimalAttributes = minimal
	}
}

// New creates new encoder for given config. Nil config stands for the default one.
func New(cfg *config.Encoder, options ...Option) (*Encoder, error) {
	if cfg == nil {
		cfg = config.DefaultEncoder()
	} else {
		cfg = cfg.Copy()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Encoder{cfg: cfg}
	if err := e.naming.Parse(cfg.NamingConvention); err != nil {
		return nil, err
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// MustNew creates new encoder. Panics on error.
func MustNew(cfg *config.Encoder, options ...Option) *Encoder {
	e, err := New(cfg, options...)
	if err != nil {
		panic(err)
	}
	return e
}

// Config gets the copy of the encoder config.
func (e *Encoder) Config() *config.Encoder {
	return e.cfg.Copy()
}

// With creates the derived encoder with the 'options' applied.
func (e *Encoder) With(options ...Option) *Encoder {
	derived := &Encoder{
		cfg:               e.cfg.Copy(),
		naming:            e.naming,
		idResolver:        e.idResolver,
		typeResolver:      e.typeResolver,
		implementation:    e.implementation,
		identifierHooks:   append([]IdentifierHook{}, e.identifierHooks...),
		relationshipHooks: append([]RelationshipHook{}, e.relationshipHooks...),
	}
	for _, option := range options {
		option(derived)
	}
	return derived
}

// Scoped calls the 'fn' with the encoder derived with the 'options'. The receiver
// is not affected, thus concurrent scopes never observe each other.
func (e *Encoder) Scoped(fn func(e *Encoder) error, options ...Option) error {
	return fn(e.With(options...))
}

// MinimalAttributes calls the 'fn' with the encoder rendering only the attributes
// explicitly requested with the 'fields' query parameter.
func (e *Encoder) MinimalAttributes(fn func(e *Encoder) error) error {
	return e.Scoped(fn, WithMinimalAttributes(true))
}

// AssembleOne assembles the document with a single primary 'resource'. Nil
// resource results in the null primary data.
func (e *Encoder) AssembleOne(req *Request, resource interface{}, options ...DocumentOption) (*Document, error) {
	a, includes, err := e.prepare(req)
	if err != nil {
		return nil, err
	}
	defer a.cache.flush()

	doc := e.newDocument(a.req)
	nodes, err := a.renderTopLevel([]interface{}{resource})
	if err != nil {
		return nil, err
	}
	if len(nodes) == 1 {
		doc.Data = nodes[0].object
	}
	if err = a.collectAll(nodes, includes); err != nil {
		return nil, err
	}
	return e.finish(a, doc, options)
}

// AssembleMany assembles the document with the collection of primary 'resources'.
// The included resources shared by multiple primary resources appear once.
func (e *Encoder) AssembleMany(req *Request, resources []interface{}, options ...DocumentOption) (*Document, error) {
	a, includes, err := e.prepare(req)
	if err != nil {
		return nil, err
	}
	defer a.cache.flush()

	doc := e.newDocument(a.req)
	nodes, err := a.renderTopLevel(resources)
	if err != nil {
		return nil, err
	}
	data := make([]*ResourceObject, len(nodes))
	for i, n := range nodes {
		data[i] = n.object
	}
	doc.Data = data
	if err = a.collectAll(nodes, includes); err != nil {
		return nil, err
	}
	return e.finish(a, doc, options)
}

// prepare creates the assembly and validates the request query.
func (e *Encoder) prepare(req *Request) (*assembly, *query.IncludeNode, error) {
	a := newAssembly(e, req)
	if _, err := a.req.Fieldsets(); err != nil {
		return nil, nil, err
	}
	includes, err := query.ParseIncludes(a.req.Query(), e.cfg.IncludeNestedLimit)
	if err != nil {
		return nil, nil, err
	}
	return a, includes, nil
}

func (e *Encoder) newDocument(req *Request) *Document {
	return &Document{
		Links:   Links{},
		Meta:    Meta{},
		JSONAPI: e.serverImplementation(req),
	}
}

func (e *Encoder) finish(a *assembly, doc *Document, options []DocumentOption) (*Document, error) {
	doc.Included = a.included
	for _, option := range options {
		option(doc)
	}
	if err := doc.Links.Validate(); err != nil {
		return nil, err
	}
	logger.Debugf("Assembled document with %d included resources.", len(doc.Included))
	return doc, nil
}

func (e *Encoder) serverImplementation(req *Request) ServerImplementation {
	if e.implementation != nil {
		implementation := e.implementation(req)
		if implementation.Meta == nil {
			implementation.Meta = Meta{}
		}
		return implementation
	}
	return ServerImplementation{Version: e.cfg.Version, Meta: mergeMeta(e.cfg.ImplementationMeta, nil)}
}
