package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/localnerve/qadesk/internal/models"
)

// AuditAnswer is one answered question of a submission.
type AuditAnswer struct {
	Question string `json:"question"`
	Result   string `json:"result"`
	Comment  string `json:"comment,omitempty"`
}

// AuditSubmission is one completed audit form. It fans out to one ledger
// row per answer, all sharing component, auditor, date, user, and version.
type AuditSubmission struct {
	Component string        `json:"component"`
	Auditor   string        `json:"auditor"`
	Date      string        `json:"date"`
	Version   string        `json:"version,omitempty"`
	Answers   []AuditAnswer `json:"answers"`
}

// BuildAuditRecords validates a submission and expands it into ledger rows
// in answer order. The user is the session holder's email.
func BuildAuditRecords(submission AuditSubmission, user string) ([]models.AuditRecord, error) {
	if strings.TrimSpace(submission.Component) == "" {
		return nil, fmt.Errorf("component is required")
	}
	if strings.TrimSpace(submission.Auditor) == "" {
		return nil, fmt.Errorf("auditor is required")
	}
	if len(submission.Answers) == 0 {
		return nil, fmt.Errorf("submission has no answers")
	}

	date, err := models.ParseDate(submission.Date)
	if err != nil {
		return nil, err
	}

	records := make([]models.AuditRecord, 0, len(submission.Answers))
	for _, answer := range submission.Answers {
		result, ok := models.NormalizeResult(answer.Result)
		if !ok {
			return nil, fmt.Errorf("unrecognized result %q for question %q", answer.Result, answer.Question)
		}
		if strings.TrimSpace(answer.Question) == "" {
			return nil, fmt.Errorf("answer has no question")
		}

		records = append(records, models.AuditRecord{
			ID:        uuid.NewString(),
			Auditor:   submission.Auditor,
			Date:      date,
			User:      user,
			Component: submission.Component,
			Question:  answer.Question,
			Result:    result,
			Comment:   answer.Comment,
			Version:   submission.Version,
		})
	}
	return records, nil
}
