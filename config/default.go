package config

const (
	// DefaultVersion is the default JSON API version.
	DefaultVersion = "1.0"
	// DefaultNamingConvention is the default naming convention of the derived type names.
	DefaultNamingConvention = "lower_camel"
)

// DefaultEncoder returns default encoder configuration.
func DefaultEncoder() *Encoder {
	return &Encoder{
		NamingConvention:   DefaultNamingConvention,
		Version:            DefaultVersion,
		ImplementationMeta: map[string]interface{}{},
		LogLevel:           "info",
	}
}
