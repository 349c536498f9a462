package decode

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// decodePDF concatenates the plain text of every page in document order.
// Pages that fail individually are skipped; only a document-level reader
// failure surfaces as a DecodeError.
func decodePDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", &DecodeError{Message: "failed to read PDF document", Cause: err}
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}
