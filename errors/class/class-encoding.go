package class

// MjrEncoding - major that classifies errors related with the document encoding.
var MjrEncoding Major

var (
	// MnrEncodingMarshal is the 'MjrEncoding' minor error classification
	// for the marshal process.
	MnrEncodingMarshal Minor

	// EncodingMarshalOutput is the 'MjrEncoding', 'MnrEncodingMarshal' error classification
	// used when writing the output fails.
	EncodingMarshalOutput Class

	// EncodingMarshalInput is the 'MjrEncoding', 'MnrEncodingMarshal' error classification
	// used when the provided document is not valid.
	EncodingMarshalInput Class

	// EncodingLinksInvalid is the 'MjrEncoding', 'MnrEncodingMarshal' error classification
	// used when a links object member is neither a string nor a link object.
	EncodingLinksInvalid Class
)

func registerEncodingClasses() {
	MjrEncoding = MustRegisterMajor("Encoding", "encoding related issues")

	MnrEncodingMarshal = MjrEncoding.MustRegisterMinor("Marshal", "marshaling the document")
	EncodingMarshalOutput = MnrEncodingMarshal.MustRegisterIndex("Output", "writing marshaled output failed").Class()
	EncodingMarshalInput = MnrEncodingMarshal.MustRegisterIndex("Input", "marshaling invalid document").Class()
	EncodingLinksInvalid = MnrEncodingMarshal.MustRegisterIndex("Links Invalid", "invalid links object member").Class()
}
