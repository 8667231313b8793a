package openrtb2

// 3.2.5 Object: Native
//
// This object represents a native type impression. Request holds the native markup
// request as a string; it is opaque to this package.
type Native struct {
	Request *string
	Ver     *string
	API     []APIFramework
	BAttr   []CreativeAttribute

	Extension
}
