// Package services holds the requirement intake pipeline and threaded
// messaging, between the HTTP handlers and the store facade.
package services

import (
	"errors"
	"log"
	"strings"

	"github.com/reqpilot/reqpilot/internal/analysis"
	"github.com/reqpilot/reqpilot/internal/mirror"
	"github.com/reqpilot/reqpilot/internal/models"
	"github.com/reqpilot/reqpilot/internal/store"
)

var ErrEmptyRequirement = errors.New("requirement text is missing")

type RequirementResult struct {
	Original       string   `json:"original"`
	Tokens         []string `json:"tokens"`
	FilteredTokens []string `json:"filtered_tokens"`
	Category       string   `json:"category"`
}

type IntakeService struct {
	mirror *mirror.Log
}

func NewIntakeService(mirrorLog *mirror.Log) *IntakeService {
	return &IntakeService{mirror: mirrorLog}
}

// Submit runs tokenize, filter and classify over the raw text, persists the
// requirement row and mirrors the full analysis to the audit log.
func (s *IntakeService) Submit(projectID uint, rawText string) (*RequirementResult, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, ErrEmptyRequirement
	}

	tokens := analysis.Tokenize(rawText)
	filtered := analysis.RemoveStopWords(tokens)
	category := analysis.Classify(filtered)

	requirement := models.Requirement{
		ProjectID: projectID,
		Text:      rawText,
		Category:  string(category),
	}

	if err := store.CreateRequirement(&requirement); err != nil {
		return nil, err
	}

	result := &RequirementResult{
		Original:       rawText,
		Tokens:         tokens,
		FilteredTokens: filtered,
		Category:       string(category),
	}

	if err := s.mirror.Append(mirror.Entry{
		Original:       result.Original,
		Tokens:         result.Tokens,
		FilteredTokens: result.FilteredTokens,
		Category:       result.Category,
	}); err != nil {
		log.Printf("Failed to append to mirror log: %v", err)
	}

	return result, nil
}
