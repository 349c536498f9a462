package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	for _, mime := range []string{MimePDF, MimeText, MimeDoc, MimeDocx} {
		assert.True(t, Supported(mime), mime)
	}

	assert.False(t, Supported("image/png"))
	assert.False(t, Supported("application/zip"))
	assert.False(t, Supported(""))
}

func TestDecode_PlainTextPassthrough(t *testing.T) {
	text, err := Decode([]byte("JANE DOE\njane.doe@example.com"), MimeText)

	require.NoError(t, err)
	assert.Equal(t, "JANE DOE\njane.doe@example.com", text)
}

func TestDecode_UnsupportedMime(t *testing.T) {
	text, err := Decode([]byte("data"), "image/png")

	assert.Empty(t, text)
	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "image/png", unsupported.MimeType)
}

func TestDecode_GarbagePDFIsDecodeError(t *testing.T) {
	text, err := Decode([]byte("this is not a pdf"), MimePDF)

	assert.Empty(t, text)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestDecode_WordFallsBackToRawText(t *testing.T) {
	// Mislabeled uploads are common; Word decoding degrades to raw bytes
	// instead of failing.
	for _, mime := range []string{MimeDoc, MimeDocx} {
		text, err := Decode([]byte("plain text posing as a word document"), mime)

		require.NoError(t, err, mime)
		assert.Equal(t, "plain text posing as a word document", text, mime)
	}
}

func TestDecodeErrorUnwrap(t *testing.T) {
	cause := assert.AnError
	err := &DecodeError{Message: "broken stream", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "broken stream")
}
