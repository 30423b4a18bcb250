package services

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/localnerve/qadesk/data"
)

// LoadQuestions returns the active audit question set: the questions.json
// file in the data directory when present, else the embedded defaults.
func LoadQuestions(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			raw = data.DefaultQuestions
		} else {
			return nil, fmt.Errorf("failed to read question set %s: %w", path, err)
		}
	}

	var questions []string
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse question set: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("question set is empty")
	}
	return questions, nil
}
