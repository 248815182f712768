// Package resource provides references to binary data such as images,
// either on the file system or embedded in the program.
package resource

// Resource is a reference to binary data. It is one of a closed set of
// variants: None, AbsoluteFilePath, or EmbeddedData.
//
// The zero-value interface is not used; None{} is the explicit "no
// data" variant so that item properties always hold a valid Resource.
type Resource interface {
	isResource()
}

// None is a resource that does not represent any data.
type None struct{}

// AbsoluteFilePath points to a file in the file system.
type AbsoluteFilePath struct {
	Path string
}

// EmbeddedData is binary data embedded in the program.
type EmbeddedData struct {
	Data []byte
}

func (None) isResource()             {}
func (AbsoluteFilePath) isResource() {}
func (EmbeddedData) isResource()     {}
