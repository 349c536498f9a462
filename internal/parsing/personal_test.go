package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPersonalInfo_UppercaseName(t *testing.T) {
	text := "JANE DOE\njane.doe@example.com"
	info := ExtractPersonalInfo(text, Lines(text))

	assert.Equal(t, "JANE DOE", info.FullName)
}

func TestExtractPersonalInfo_TitleCaseName(t *testing.T) {
	text := "Jane Wanjiru Doe\njane@example.com"
	info := ExtractPersonalInfo(text, Lines(text))

	assert.Equal(t, "Jane Wanjiru Doe", info.FullName)
}

func TestExtractPersonalInfo_SkipsDocumentTitles(t *testing.T) {
	text := "Curriculum Vitae\nJANE DOE\njane@example.com"
	info := ExtractPersonalInfo(text, Lines(text))

	assert.Equal(t, "JANE DOE", info.FullName)
}

func TestExtractPersonalInfo_NameNotBeyondScanWindow(t *testing.T) {
	filler := strings.Repeat("x\n", nameScanLines)
	text := filler + "JANE DOE"
	info := ExtractPersonalInfo(text, Lines(text))

	assert.Empty(t, info.FullName)
}

func TestExtractPersonalInfo_EmailAnywhereInText(t *testing.T) {
	text := "JANE DOE\nEDUCATION\nContact: jane.doe@example.com"
	info := ExtractPersonalInfo(text, Lines(text))

	assert.Equal(t, "jane.doe@example.com", info.Email)
}

func TestExtractPersonalInfo_RegionalPhone(t *testing.T) {
	text := "JANE DOE\n+254 712 345 678"
	info := ExtractPersonalInfo(text, Lines(text))

	assert.Equal(t, "+254 712 345 678", info.Phone)
}

func TestExtractPersonalInfo_LeadingZeroPhone(t *testing.T) {
	text := "JANE DOE\n0712 345 678"
	info := ExtractPersonalInfo(text, Lines(text))

	assert.Equal(t, "0712 345 678", info.Phone)
}

func TestExtractPersonalInfo_NANPPhone(t *testing.T) {
	text := "JOHN SMITH\n(555) 867-5309"
	info := ExtractPersonalInfo(text, Lines(text))

	assert.Equal(t, "(555) 867-5309", info.Phone)
}

func TestExtractPersonalInfo_SocialLinks(t *testing.T) {
	text := "JANE DOE\ngithub.com/janedoe\nlinkedin.com/in/jane-doe"
	info := ExtractPersonalInfo(text, Lines(text))

	assert.Equal(t, "https://github.com/janedoe", info.GitHubURL)
	assert.Equal(t, "https://linkedin.com/in/jane-doe", info.LinkedInURL)
}

func TestExtractPersonalInfo_WebsiteExcludesSocialHosts(t *testing.T) {
	text := "JANE DOE\nhttps://github.com/janedoe\nwww.janedoe.dev"
	info := ExtractPersonalInfo(text, Lines(text))

	assert.Equal(t, "https://www.janedoe.dev", info.WebsiteURL)
}

func TestExtractPersonalInfo_GazetteerLocation(t *testing.T) {
	text := "JANE DOE\nNairobi, Kenya"
	info := ExtractPersonalInfo(text, Lines(text))

	assert.Equal(t, "Nairobi", info.Address)
}

func TestExtractPersonalInfo_FieldsAreIndependent(t *testing.T) {
	full := "JANE DOE\njane.doe@example.com\n+254 712 345 678\nNairobi"
	noEmail := "JANE DOE\n+254 712 345 678\nNairobi"

	withEmail := ExtractPersonalInfo(full, Lines(full))
	withoutEmail := ExtractPersonalInfo(noEmail, Lines(noEmail))

	assert.Empty(t, withoutEmail.Email)
	assert.Equal(t, withEmail.FullName, withoutEmail.FullName)
	assert.Equal(t, withEmail.Phone, withoutEmail.Phone)
	assert.Equal(t, withEmail.Address, withoutEmail.Address)
}

func TestExtractPersonalInfo_NothingFound(t *testing.T) {
	info := ExtractPersonalInfo("", nil)

	assert.Empty(t, info.FullName)
	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
	assert.Empty(t, info.Address)
	assert.Empty(t, info.GitHubURL)
	assert.Empty(t, info.LinkedInURL)
	assert.Empty(t, info.WebsiteURL)
}
