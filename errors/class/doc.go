// Package class contains the error classification system used by the errors package.
//
// Each Class is composed of Major, Minor and Index parts. Majors are registered
// with RegisterMajor, minors on their major and indexes on their minor:
//
//	MjrQuery = MustRegisterMajor("Query")
//	MnrQueryInclude = MjrQuery.MustRegisterMinor("Include")
//	QueryIncludeTooDeep = MnrQueryInclude.MustRegisterIndex("Too Deep").Class()
package class
