// Package query parses the JSON API request query parameters used while
// encoding the documents: the sparse fieldsets 'fields[type]=a,b' and the
// dotted include paths 'include=posts.author,comments'.
package query
