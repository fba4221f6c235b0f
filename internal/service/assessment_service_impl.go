package service

import (
	"edscope/internal/assess"
	"edscope/internal/domain"
)

type assessmentService struct{}

// NewAssessmentService creates the stateless assessment evaluator.
func NewAssessmentService() AssessmentService {
	return &assessmentService{}
}

func (s *assessmentService) Summarize(scores domain.Scores) []assess.Summary {
	return assess.SummarizeAll(scores)
}
