package class

// MjrQuery - major that classifies the errors related with the request query parameters.
var MjrQuery Major

var (
	// MnrQueryParameters is the 'MjrQuery' minor error classification
	// for the query string issues.
	MnrQueryParameters Minor

	// QueryParametersInvalid is the 'MjrQuery', 'MnrQueryParameters' error classification
	// for the query string that could not be parsed.
	QueryParametersInvalid Class

	// MnrQueryFieldset is the 'MjrQuery' minor error classification
	// for query fieldset related issues.
	MnrQueryFieldset Minor

	// QueryFieldsetInvalid is the 'MjrQuery', 'MnrQueryFieldset' error classification
	// for invalid fieldset parameters.
	QueryFieldsetInvalid Class

	// MnrQueryInclude is the 'MjrQuery' minor error classification
	// for the include parameter issues.
	MnrQueryInclude Minor

	// QueryIncludeInvalid is the 'MjrQuery', 'MnrQueryInclude' error classification
	// for malformed include paths.
	QueryIncludeInvalid Class

	// QueryIncludeTooDeep is the 'MjrQuery', 'MnrQueryInclude' error classification
	// for include paths exceeding the nested limit.
	QueryIncludeTooDeep Class

	// QueryIncludeUnknownRelation is the 'MjrQuery', 'MnrQueryInclude' error classification
	// for include paths naming relationships not declared by the resource.
	QueryIncludeUnknownRelation Class
)

func registerQueryClasses() {
	MjrQuery = MustRegisterMajor("Query", "request query issues")

	MnrQueryParameters = MjrQuery.MustRegisterMinor("Parameters", "issues related with the query string")
	QueryParametersInvalid = MnrQueryParameters.MustRegisterIndex("Invalid", "invalid query string").Class()

	MnrQueryFieldset = MjrQuery.MustRegisterMinor("Fieldset", "issues related with the query fieldset")
	QueryFieldsetInvalid = MnrQueryFieldset.MustRegisterIndex("Invalid", "invalid fieldset parameter").Class()

	MnrQueryInclude = MjrQuery.MustRegisterMinor("Include", "issues related with the included relationships")
	QueryIncludeInvalid = MnrQueryInclude.MustRegisterIndex("Invalid", "invalid include path").Class()
	QueryIncludeTooDeep = MnrQueryInclude.MustRegisterIndex("Too Deep", "include path exceeds nested limit").Class()
	QueryIncludeUnknownRelation = MnrQueryInclude.MustRegisterIndex("Unknown Relation", "included relation not declared").Class()
}
