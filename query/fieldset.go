package query

import (
	"net/url"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/neuronlabs/jsonapi/common"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// Fieldsets maps the resource type to its requested field names in the order
// of their first occurrence. An existing type with an empty slice means that
// no fields were requested for that type.
type Fieldsets map[string][]string

// Fields gets the requested fields for the resource type 'typ'.
// The second return value reports whether the type was present in the query.
func (f Fieldsets) Fields(typ string) ([]string, bool) {
	fields, ok := f[typ]
	return fields, ok
}

// ParseFieldsets parses the 'fields[type]=a,b,c' query parameters. The
// repeated parameters of a single type are merged in the order of their
// occurrence.
func ParseFieldsets(values url.Values) (Fieldsets, error) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	fieldsets := Fieldsets{}
	for _, key := range keys {
		if key != common.QueryParamFields && !strings.HasPrefix(key, common.QueryParamFields+"[") {
			continue
		}
		splitted, err := common.SplitBracketParameter(key[len(common.QueryParamFields):])
		if err != nil {
			return nil, errors.NewDetf(class.QueryFieldsetInvalid, "the fields parameter: '%s' is of invalid form", key).
				WithDetail(err.Error())
		}
		switch {
		case len(splitted) != 1:
			return nil, errors.NewDetf(class.QueryFieldsetInvalid, "the fields parameter: '%s' is of invalid form", key).
				WithDetail("nested 'fields' is not supported")
		case strings.TrimSpace(splitted[0]) == "":
			return nil, errors.NewDetf(class.QueryFieldsetInvalid, "the fields parameter: '%s' has no resource type", key)
		}

		typ := strings.TrimSpace(splitted[0])
		fields, ok := fieldsets[typ]
		if !ok {
			fields = []string{}
		}
		for _, value := range values[key] {
			for _, field := range strings.Split(value, common.ValueSeparator) {
				field = strings.TrimSpace(field)
				if field == "" || slices.Contains(fields, field) {
					continue
				}
				fields = append(fields, field)
			}
		}
		fieldsets[typ] = fields
	}
	return fieldsets, nil
}
