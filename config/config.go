package config

// Encoder defines the configuration for the JSON API document encoder.
type Encoder struct {
	// NamingConvention is the naming convention used for the derived resource type names.
	// Allowed values:
	// - camel
	// - lower_camel
	// - snake
	// - kebab
	NamingConvention string `mapstructure:"naming_convention" validate:"oneof=camel lower_camel snake kebab"`

	// MinimalAttributes omits all attributes of the types not listed in the 'fields' query parameter.
	MinimalAttributes bool `mapstructure:"minimal_attributes"`

	// AvailableAttributesMeta adds the declared attribute names to each resource meta.
	AvailableAttributesMeta bool `mapstructure:"available_attributes_meta"`

	// StrictIncludes fails the encoding when an include path names a relationship
	// not declared by the resource. Such paths are ignored otherwise.
	StrictIncludes bool `mapstructure:"strict_includes"`

	// IncludeNestedLimit is the maximum number of relationships in a single include path.
	// Zero value means no limit.
	IncludeNestedLimit int `mapstructure:"include_nested_limit" validate:"gte=0"`

	// Version is the JSON API version set in the 'jsonapi' document member.
	Version string `mapstructure:"version" validate:"required"`

	// ImplementationMeta is the meta set in the 'jsonapi' document member.
	ImplementationMeta map[string]interface{} `mapstructure:"implementation_meta"`

	// EscapeHTML escapes the HTML characters in the marshaled JSON strings.
	EscapeHTML bool `mapstructure:"escape_html"`

	// LogLevel is the current logging level.
	LogLevel string `mapstructure:"log_level" validate:"isdefault|oneof=debug3 debug2 debug info warning error critical"`
}

// Copy creates a copy of the encoder config.
func (e *Encoder) Copy() *Encoder {
	cp := *e
	if e.ImplementationMeta != nil {
		cp.ImplementationMeta = make(map[string]interface{}, len(e.ImplementationMeta))
		for k, v := range e.ImplementationMeta {
			cp.ImplementationMeta[k] = v
		}
	}
	return &cp
}
