// Package handlers contains the HTTP handlers for the matching API.
package handlers

import (
	"math"
	"net/http"

	"contact-scout/internal/api"
	"contact-scout/internal/match"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ContactRequest is the caller-supplied contact being reconciled.
type ContactRequest struct {
	FullName  string   `json:"full_name" validate:"required"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Emails    []string `json:"emails" validate:"omitempty,dive,email"`
	Company   string   `json:"company"`
	JobTitle  string   `json:"job_title"`
	Location  string   `json:"location"`
}

func (r ContactRequest) toContact() *match.Contact {
	return &match.Contact{
		FullName:  r.FullName,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Emails:    r.Emails,
		Company:   r.Company,
		JobTitle:  r.JobTitle,
		Location:  r.Location,
	}
}

// CandidateRequest is one caller-supplied candidate profile.
type CandidateRequest struct {
	Name     string `json:"name" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	Email    string `json:"email" validate:"omitempty,email"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Headline string `json:"headline"`
}

func (r CandidateRequest) toCandidate() match.CandidateProfile {
	return match.CandidateProfile{
		Name:     r.Name,
		URL:      r.URL,
		Email:    r.Email,
		Company:  r.Company,
		Location: r.Location,
		Headline: r.Headline,
	}
}

// MatchRequest scores a contact against an inline candidate list.
type MatchRequest struct {
	Contact    ContactRequest     `json:"contact" validate:"required"`
	Candidates []CandidateRequest `json:"candidates" validate:"required,min=1,dive"`
}

// BreakdownResponse is the per-component point breakdown.
type BreakdownResponse struct {
	Email    int `json:"email"`
	Name     int `json:"name"`
	Company  int `json:"company"`
	Location int `json:"location"`
	JobTitle int `json:"job_title"`
	Total    int `json:"total"`
}

// MatchResponse is one ranked candidate.
type MatchResponse struct {
	Name       string            `json:"name"`
	URL        string            `json:"url"`
	Email      string            `json:"email,omitempty"`
	Company    string            `json:"company,omitempty"`
	Location   string            `json:"location,omitempty"`
	Headline   string            `json:"headline,omitempty"`
	Score      int               `json:"score"`
	Confidence string            `json:"confidence"`
	Reasons    []string          `json:"reasons"`
	Breakdown  BreakdownResponse `json:"breakdown"`
}

func roundPoints(c match.ComponentScore) int {
	return int(math.Round(c.Points))
}

func toMatchResponses(matches []match.Match) []MatchResponse {
	responses := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		responses = append(responses, MatchResponse{
			Name:       m.Candidate.Name,
			URL:        m.Candidate.URL,
			Email:      m.Candidate.Email,
			Company:    m.Candidate.Company,
			Location:   m.Candidate.Location,
			Headline:   m.Candidate.Headline,
			Score:      m.Score,
			Confidence: string(m.Confidence),
			Reasons:    m.Reasons,
			Breakdown: BreakdownResponse{
				Email:    roundPoints(m.Breakdown.Email),
				Name:     roundPoints(m.Breakdown.Name),
				Company:  roundPoints(m.Breakdown.Company),
				Location: roundPoints(m.Breakdown.Location),
				JobTitle: roundPoints(m.Breakdown.JobTitle),
				Total:    m.Breakdown.Total,
			},
		})
	}
	return responses
}

// MatchHandler handles matching requests with caller-supplied candidates
type MatchHandler struct {
	matcher   *match.Matcher
	validator *validator.Validate
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matcher *match.Matcher) *MatchHandler {
	return &MatchHandler{
		matcher:   matcher,
		validator: validator.New(),
	}
}

// Match scores the request's candidates against its contact and returns
// every candidate ranked by score.
func (h *MatchHandler) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	contact := req.Contact.toContact()
	candidates := make([]match.CandidateProfile, 0, len(req.Candidates))
	for _, cr := range req.Candidates {
		candidates = append(candidates, cr.toCandidate())
	}

	matches := h.matcher.Match(contact, candidates)
	api.SendSuccess(c, http.StatusOK, toMatchResponses(matches), nil)
}
