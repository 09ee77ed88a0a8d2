package jsonapi

// Document is the JSON API compound document.
type Document struct {
	// Data is the primary data. It is either a *ResourceObject, nil for the
	// absent single resource, or a []*ResourceObject.
	Data     interface{}          `json:"data"`
	Included []*ResourceObject    `json:"included"`
	Links    Links                `json:"links"`
	Meta     Meta                 `json:"meta"`
	JSONAPI  ServerImplementation `json:"jsonapi"`
}

// One gets the single primary resource object.
func (d *Document) One() (*ResourceObject, bool) {
	object, ok := d.Data.(*ResourceObject)
	return object, ok && object != nil
}

// Many gets the primary resource objects collection.
func (d *Document) Many() ([]*ResourceObject, bool) {
	objects, ok := d.Data.([]*ResourceObject)
	return objects, ok
}

// ServerImplementation is the 'jsonapi' document member describing the server implementation.
type ServerImplementation struct {
	Version string `json:"version"`
	Meta    Meta   `json:"meta"`
}

// ImplementationProvider provides the server implementation descriptor for the request.
type ImplementationProvider func(req *Request) ServerImplementation

// DocumentOption sets up the document level members.
type DocumentOption func(d *Document)

// DocumentLinks adds the 'links' to the document links. The later links take precedence.
func DocumentLinks(links Links) DocumentOption {
	return func(d *Document) {
		d.Links = mergeLinks(d.Links, links)
	}
}

// DocumentMeta adds the 'meta' to the document meta. The later meta take precedence.
func DocumentMeta(meta Meta) DocumentOption {
	return func(d *Document) {
		d.Meta = mergeMeta(d.Meta, meta)
	}
}
