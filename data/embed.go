package data

import (
	_ "embed"
)

//go:embed questions.json
var DefaultQuestions []byte
