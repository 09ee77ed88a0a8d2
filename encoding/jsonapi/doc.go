// Package jsonapi renders graphs of resources into JSON API compound documents.
//
// A resource is any value. Its capabilities are declared by implementing the
// optional interfaces: Attributer, Relationer, Linkable, Metable, Identifiable
// and Typed. Values that implement none of them are still rendered, with the
// id and type taken from the configured resolvers or the default conventions.
//
//	type UserResource struct{ *User }
//
//	func (u UserResource) JSONAPIModel() interface{} { return u.User }
//
//	func (u UserResource) JSONAPIAttributes(req *jsonapi.Request) []jsonapi.Attribute {
//		return []jsonapi.Attribute{
//			{Name: "name", Value: u.Name},
//			{Name: "avatar", Value: jsonapi.Lazy(func() (interface{}, error) { return u.Avatar() })},
//		}
//	}
//
//	func (u UserResource) JSONAPIRelationships(req *jsonapi.Request) []jsonapi.Relationship {
//		return []jsonapi.Relationship{{Name: "posts", Resolve: func() (jsonapi.Related, error) {
//			return jsonapi.ToMany(jsonapi.Resources(u.Posts)...), nil
//		}}}
//	}
//
// The Encoder assembles the document for a single request. Every resource
// reachable through the requested include paths appears once in the
// 'included' member, and each resource is rendered at most once per assembly.
package jsonapi
