package contactfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const sampleVCard = "BEGIN:VCARD\r\n" +
	"VERSION:4.0\r\n" +
	"FN:John Doe\r\n" +
	"N:Doe;John;;;\r\n" +
	"EMAIL:john.doe@acme.com\r\n" +
	"EMAIL:jdoe@personal.org\r\n" +
	"ORG:Acme Corp\r\n" +
	"TITLE:Software Engineer\r\n" +
	"ADR:;;123 Main St;San Francisco;CA;94105;USA\r\n" +
	"END:VCARD\r\n"

func TestLoadContactVCard(t *testing.T) {
	path := writeTempFile(t, "contact.vcf", sampleVCard)

	contact, err := LoadContact(path)
	require.NoError(t, err)

	assert.Equal(t, "John Doe", contact.FullName)
	assert.Equal(t, "John", contact.FirstName)
	assert.Equal(t, "Doe", contact.LastName)
	assert.Equal(t, []string{"john.doe@acme.com", "jdoe@personal.org"}, contact.Emails)
	assert.Equal(t, "Acme Corp", contact.Company)
	assert.Equal(t, "Software Engineer", contact.JobTitle)
	assert.Equal(t, "San Francisco, CA", contact.Location)
}

func TestLoadContactJSON(t *testing.T) {
	path := writeTempFile(t, "contact.json", `{
		"full_name": "Jane Roe",
		"emails": ["jane@startup.io"],
		"company": "Startup Inc",
		"location": "Austin, TX"
	}`)

	contact, err := LoadContact(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Roe", contact.FullName)
	assert.Equal(t, "Jane", contact.FirstName)
	assert.Equal(t, "Roe", contact.LastName)
	assert.Equal(t, []string{"jane@startup.io"}, contact.Emails)
}

func TestLoadContactJSONEmptyCollections(t *testing.T) {
	path := writeTempFile(t, "contact.json", `{"full_name": "Jane Roe"}`)

	contact, err := LoadContact(path)
	require.NoError(t, err)
	assert.NotNil(t, contact.Emails)
	assert.Empty(t, contact.Emails)
}

func TestLoadContactMissingName(t *testing.T) {
	path := writeTempFile(t, "contact.json", `{"company": "Acme"}`)

	_, err := LoadContact(path)
	assert.ErrorIs(t, err, ErrNoName)
}

func TestLoadContactUnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "contact.txt", "John Doe")

	_, err := LoadContact(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported contact file format")
}

func TestLoadCandidates(t *testing.T) {
	path := writeTempFile(t, "candidates.json", `[
		{"name": "John Doe", "url": "https://example.com/a", "company": "Acme"},
		{"name": "", "url": "https://example.com/skipped"},
		{"name": "J. Doe", "url": "https://example.com/b"}
	]`)

	candidates, err := LoadCandidates(path)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "https://example.com/a", candidates[0].URL)
	assert.Equal(t, "https://example.com/b", candidates[1].URL)
}
