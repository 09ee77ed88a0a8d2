package config

import (
	"github.com/spf13/viper"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/log"
)

// EnvPrefix is the prefix of the environment variables overriding the config values,
// i.e. 'JSONAPI_MINIMAL_ATTRIBUTES=true'.
const EnvPrefix = "JSONAPI"

// ViperSetDefaults sets the default values for the viper config.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadDefaultConfig reads the default configuration with the environment overrides.
func ReadDefaultConfig() (*Encoder, error) {
	v := newViper()
	return unmarshal(v)
}

// ReadNamedConfig reads the config with the provided name. The config is searched in the
// provided 'paths' or in the working directory and the 'configs' subdirectory if none given.
func ReadNamedConfig(name string, paths ...string) (*Encoder, error) {
	v := newViper()
	v.SetConfigName(name)
	if len(paths) == 0 {
		paths = []string{".", "configs"}
	}
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, readError(name, err)
	}
	return unmarshal(v)
}

// ReadConfigFile reads the config from the file at 'path'. The format is taken from the file extension.
func ReadConfigFile(path string) (*Encoder, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, readError(path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Encoder, error) {
	e := &Encoder{}
	if err := v.Unmarshal(e); err != nil {
		log.Debugf("Unmarshaling Encoder Config failed. %v", err)
		return nil, errors.NewDet(class.ConfigReadFormat, "unmarshaling encoder config failed").WithDetail(err.Error())
	}
	if e.ImplementationMeta == nil {
		e.ImplementationMeta = map[string]interface{}{}
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func readError(name string, err error) error {
	if _, ok := err.(viper.ConfigParseError); ok {
		return errors.NewDetf(class.ConfigReadFormat, "config: '%s' is not valid", name).WithDetail(err.Error())
	}
	return errors.NewDetf(class.ConfigReadNotFound, "config: '%s' not found", name).WithDetail(err.Error())
}

// Default values
func setDefaults(v *viper.Viper) {
	def := DefaultEncoder()
	keys := map[string]interface{}{
		"naming_convention":         def.NamingConvention,
		"minimal_attributes":        def.MinimalAttributes,
		"available_attributes_meta": def.AvailableAttributesMeta,
		"strict_includes":           def.StrictIncludes,
		"include_nested_limit":      def.IncludeNestedLimit,
		"version":                   def.Version,
		"escape_html":               def.EscapeHTML,
		"log_level":                 def.LogLevel,
	}

	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
