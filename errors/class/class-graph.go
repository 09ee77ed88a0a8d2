package class

// MjrGraph - major that classifies errors related with the resource graph fixtures.
var MjrGraph Major

var (
	// MnrGraphFixture is the 'MjrGraph' minor error classification
	// for the fixture decoding.
	MnrGraphFixture Minor

	// GraphFixtureInvalid is the 'MjrGraph', 'MnrGraphFixture' error classification
	// for malformed fixture documents.
	GraphFixtureInvalid Class

	// GraphReferenceNotFound is the 'MjrGraph', 'MnrGraphFixture' error classification
	// for references to undefined resources.
	GraphReferenceNotFound Class
)

func registerGraphClasses() {
	MjrGraph = MustRegisterMajor("Graph", "resource graph fixture issues")

	MnrGraphFixture = MjrGraph.MustRegisterMinor("Fixture", "fixture document issues")
	GraphFixtureInvalid = MnrGraphFixture.MustRegisterIndex("Invalid", "malformed fixture").Class()
	GraphReferenceNotFound = MnrGraphFixture.MustRegisterIndex("Reference Not Found", "reference to undefined resource").Class()
}
