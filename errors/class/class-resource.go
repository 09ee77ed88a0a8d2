package class

// MjrResource - major that classifies errors related with resolving
// the resources and their identity.
var MjrResource Major

var (
	// MnrResourceIdentity is the 'MjrResource' minor error classification
	// for the resource identity resolution.
	MnrResourceIdentity Minor

	// ResourceIdentityID is the 'MjrResource', 'MnrResourceIdentity' error classification
	// used when the resource id could not be resolved.
	ResourceIdentityID Class

	// ResourceIdentityType is the 'MjrResource', 'MnrResourceIdentity' error classification
	// used when the resource type could not be resolved.
	ResourceIdentityType Class

	// MnrResourceValue is the 'MjrResource' minor error classification
	// for invalid resource values.
	MnrResourceValue Minor

	// ResourceNil is the 'MjrResource', 'MnrResourceValue' error classification
	// used when a nil resource is provided where a value is required.
	ResourceNil Class

	// ResourceRelationshipInvalid is the 'MjrResource', 'MnrResourceValue' error classification
	// used when a relationship declaration is not valid.
	ResourceRelationshipInvalid Class
)

func registerResourceClasses() {
	MjrResource = MustRegisterMajor("Resource", "resource related issues")

	MnrResourceIdentity = MjrResource.MustRegisterMinor("Identity", "resolving resource identity")
	ResourceIdentityID = MnrResourceIdentity.MustRegisterIndex("ID", "resource id could not be resolved").Class()
	ResourceIdentityType = MnrResourceIdentity.MustRegisterIndex("Type", "resource type could not be resolved").Class()

	MnrResourceValue = MjrResource.MustRegisterMinor("Value", "resource value issues")
	ResourceNil = MnrResourceValue.MustRegisterIndex("Nil", "nil resource value").Class()
	ResourceRelationshipInvalid = MnrResourceValue.MustRegisterIndex("Relationship Invalid", "invalid relationship declaration").Class()
}
