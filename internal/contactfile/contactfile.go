// Package contactfile loads the locally known contact (and optional
// candidate lists) from vCard or JSON files, producing values that honor
// the matcher's input contract: FullName is always non-empty and
// collections default to empty rather than nil.
package contactfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"contact-scout/internal/match"

	"github.com/emersion/go-vcard"
)

// ErrNoName is returned when a contact file carries no usable name.
var ErrNoName = errors.New("contact has no name")

// contactJSON is the JSON file representation of a contact.
type contactJSON struct {
	FullName  string   `json:"full_name"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Emails    []string `json:"emails,omitempty"`
	Company   string   `json:"company,omitempty"`
	JobTitle  string   `json:"job_title,omitempty"`
	Location  string   `json:"location,omitempty"`
}

// candidateJSON is the JSON file representation of one candidate profile.
type candidateJSON struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Email    string `json:"email,omitempty"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	Headline string `json:"headline,omitempty"`
}

// LoadContact reads a contact from a .vcf/.vcard or .json file.
func LoadContact(path string) (*match.Contact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contact file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".vcf", ".vcard":
		return decodeVCard(f)
	case ".json":
		return decodeContactJSON(f)
	default:
		return nil, fmt.Errorf("unsupported contact file format %q", filepath.Ext(path))
	}
}

// LoadCandidates reads an ordered candidate list from a JSON file.
// Candidates without a URL or name are skipped; order is preserved.
func LoadCandidates(path string) ([]match.CandidateProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open candidates file: %w", err)
	}
	defer f.Close()

	var raw []candidateJSON
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse candidates file: %w", err)
	}

	candidates := make([]match.CandidateProfile, 0, len(raw))
	for _, c := range raw {
		if c.URL == "" || c.Name == "" {
			continue
		}
		candidates = append(candidates, match.CandidateProfile{
			Name:     c.Name,
			URL:      c.URL,
			Email:    c.Email,
			Company:  c.Company,
			Location: c.Location,
			Headline: c.Headline,
		})
	}

	return candidates, nil
}

func decodeContactJSON(r io.Reader) (*match.Contact, error) {
	var raw contactJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse contact file: %w", err)
	}

	contact := &match.Contact{
		FullName:  strings.TrimSpace(raw.FullName),
		FirstName: strings.TrimSpace(raw.FirstName),
		LastName:  strings.TrimSpace(raw.LastName),
		Emails:    raw.Emails,
		Company:   strings.TrimSpace(raw.Company),
		JobTitle:  strings.TrimSpace(raw.JobTitle),
		Location:  strings.TrimSpace(raw.Location),
	}
	if contact.Emails == nil {
		contact.Emails = []string{}
	}

	return finishContact(contact)
}

func decodeVCard(r io.Reader) (*match.Contact, error) {
	card, err := vcard.NewDecoder(r).Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to parse vCard: %w", err)
	}

	contact := &match.Contact{
		FullName: strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName)),
		Emails:   []string{},
	}

	if name := card.Name(); name != nil {
		contact.FirstName = strings.TrimSpace(name.GivenName)
		contact.LastName = strings.TrimSpace(name.FamilyName)
		if contact.FullName == "" {
			contact.FullName = strings.TrimSpace(strings.Join(
				[]string{contact.FirstName, contact.LastName}, " "))
		}
	}

	for _, email := range card.Values(vcard.FieldEmail) {
		if e := strings.TrimSpace(email); e != "" {
			contact.Emails = append(contact.Emails, e)
		}
	}

	contact.Company = strings.TrimSpace(card.PreferredValue(vcard.FieldOrganization))
	contact.JobTitle = strings.TrimSpace(card.PreferredValue(vcard.FieldTitle))

	if addr := card.Address(); addr != nil {
		parts := make([]string, 0, 2)
		if addr.Locality != "" {
			parts = append(parts, addr.Locality)
		}
		if addr.Region != "" {
			parts = append(parts, addr.Region)
		}
		contact.Location = strings.Join(parts, ", ")
	}

	return finishContact(contact)
}

// finishContact derives the missing name fields and enforces the
// non-empty FullName contract.
func finishContact(c *match.Contact) (*match.Contact, error) {
	if c.FullName == "" {
		c.FullName = strings.TrimSpace(c.FirstName + " " + c.LastName)
	}
	if c.FullName == "" {
		return nil, ErrNoName
	}

	if c.FirstName == "" && c.LastName == "" {
		tokens := strings.Fields(c.FullName)
		if len(tokens) > 1 {
			c.FirstName = tokens[0]
			c.LastName = tokens[len(tokens)-1]
		} else {
			c.FirstName = tokens[0]
		}
	}

	return c, nil
}
