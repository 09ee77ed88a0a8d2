package common

// Query parameter names used by the JSON API requests.
const (
	// QueryParamInclude is the query parameter with the comma separated dotted include paths.
	QueryParamInclude = "include"
	// QueryParamFields is the sparse fieldset query parameter prefix i.e. 'fields[users]'.
	QueryParamFields = "fields"
)

// Separators used within the query parameter values.
const (
	// ValueSeparator separates the values within a single parameter.
	ValueSeparator = ","
	// NestedSeparator separates the relationship names within an include path.
	NestedSeparator = "."
)
