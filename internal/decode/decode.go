// Package decode converts stored CV documents into flat text blobs,
// dispatching on the declared MIME type.
package decode

// Supported MIME types.
const (
	MimePDF  = "application/pdf"
	MimeText = "text/plain"
	MimeDoc  = "application/msword"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Supported reports whether the declared MIME type has a registered decoder.
func Supported(mimeType string) bool {
	switch mimeType {
	case MimePDF, MimeText, MimeDoc, MimeDocx:
		return true
	}
	return false
}

// Decode extracts the text content of a document from its raw bytes.
// It returns an *UnsupportedFormatError for MIME types outside the supported
// set and a *DecodeError when the chosen decoder cannot read the bytes.
func Decode(content []byte, mimeType string) (string, error) {
	switch mimeType {
	case MimePDF:
		return decodePDF(content)
	case MimeText:
		return string(content), nil
	case MimeDoc, MimeDocx:
		return decodeWord(content, mimeType)
	default:
		return "", &UnsupportedFormatError{MimeType: mimeType}
	}
}
