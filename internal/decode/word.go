package decode

import (
	"bytes"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
	"github.com/nguyenthenguyen/docx"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

// decodeWord extracts text from legacy and Office Open XML Word documents.
// Decoder failures degrade to reading the bytes as raw text rather than
// erroring, since older CV uploads are frequently mislabeled.
func decodeWord(content []byte, mimeType string) (string, error) {
	if mimeType == MimeDocx {
		if text, err := decodeDocx(content); err == nil {
			return text, nil
		}
	} else {
		res, err := docconv.Convert(bytes.NewReader(content), mimeType, false)
		if err == nil && res.Body != "" {
			return res.Body, nil
		}
	}
	return string(content), nil
}

// decodeDocx reads the document body of a .docx archive. Paragraph
// boundaries become newlines; remaining markup is stripped.
func decodeDocx(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	body := doc.Editable().GetContent()
	body = docxParagraphEnd.ReplaceAllString(body, "\n")
	body = docxTag.ReplaceAllString(body, "")
	return strings.TrimSpace(body), nil
}
