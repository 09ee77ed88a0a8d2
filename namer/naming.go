package namer

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// Namer is the function that change the name with some prepared formatting.
type Namer func(string) string

// NamingConvention is the naming convention used for the derived resource type names.
type NamingConvention int

const (
	_ NamingConvention = iota
	// SnakeCase is the naming convention where all words are in lower case letters separated by the '_' character.
	// i.e.: naming_convention
	SnakeCase
	// CamelCase is the naming convention where words are not separated and each word starts
	// with a capital letter.
	// i.e.: NamingConvention
	CamelCase
	// LowerCamelCase is the naming convention where words are not separated and all but first words starts
	// with a capital letter.
	// i.e.: namingConvention
	LowerCamelCase
	// KebabCase is the naming convention where all words are in lower case letters separated by the '-' character.
	// i.e.: naming-convention
	KebabCase
)

// ParseNamingConvention parses the naming convention 'name'.
func ParseNamingConvention(name string) (NamingConvention, error) {
	var n NamingConvention
	if err := n.Parse(name); err != nil {
		return 0, err
	}
	return n, nil
}

// Parse sets the naming convention from its 'name'.
func (n *NamingConvention) Parse(name string) error {
	switch strings.ToLower(name) {
	case "snake":
		*n = SnakeCase
	case "lower_camel", "lowercamel":
		*n = LowerCamelCase
	case "camel":
		*n = CamelCase
	case "kebab":
		*n = KebabCase
	default:
		return errors.NewDetf(class.ConfigValueNaming, "unknown naming convention name: '%s'", name)
	}
	return nil
}

// Namer gets the Namer function for the naming convention.
func (n NamingConvention) Namer() Namer {
	switch n {
	case SnakeCase:
		return NamingSnake
	case CamelCase:
		return NamingCamel
	case LowerCamelCase:
		return NamingLowerCamel
	case KebabCase:
		return NamingKebab
	default:
		return func(raw string) string { return raw }
	}
}

// String implements fmt.Stringer interface.
func (n NamingConvention) String() string {
	switch n {
	case SnakeCase:
		return "snake"
	case CamelCase:
		return "camel"
	case LowerCamelCase:
		return "lower_camel"
	case KebabCase:
		return "kebab"
	}
	return "unknown"
}

// Collection gets the plural form of the 'typeName' formatted with the naming convention.
// i.e. 'BasicModel' in the LowerCamelCase becomes 'basicModels'.
func (n NamingConvention) Collection(typeName string) string {
	return n.Namer()(inflection.Plural(typeName))
}

// NamingSnake is a Namer function that converts the 'TestingModelName' into the 'testing_model_name' format.
func NamingSnake(raw string) string {
	return strcase.ToSnake(raw)
}

// NamingKebab is a Namer function that converts the 'TestingModelName' into the 'testing-model-name' format.
func NamingKebab(raw string) string {
	return strcase.ToKebab(raw)
}

// NamingCamel is a Namer function that converts the 'testingModelName' into the 'TestingModelName' format.
func NamingCamel(raw string) string {
	return strcase.ToCamel(raw)
}

// NamingLowerCamel is a Namer function that converts the 'TestingModelName' into the 'testingModelName' format.
func NamingLowerCamel(raw string) string {
	return strcase.ToLowerCamel(raw)
}
