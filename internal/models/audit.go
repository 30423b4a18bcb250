package models

// Audit answer values. Polish form aliases are normalized on input.
const (
	ResultYes = "Yes"
	ResultNo  = "No"
	ResultNA  = "N/A"
)

// AuditRecord is one row of the audit ledger: a single answered question
// from one audit submission. Rows are append-only; the ID gives each row a
// stable identity independent of its position in the ledger file.
type AuditRecord struct {
	ID        string `json:"id"`
	Auditor   string `json:"auditor"`
	Date      Date   `json:"date"`
	User      string `json:"user"`
	Component string `json:"component"`
	Question  string `json:"question"`
	Result    string `json:"result"`
	Comment   string `json:"comment,omitempty"`
	Version   string `json:"version,omitempty"`
}

// resultAliases maps the Polish form values of the older desk variants
// onto the canonical answer set.
var resultAliases = map[string]string{
	"Yes": ResultYes,
	"No":  ResultNo,
	"N/A": ResultNA,
	"Tak": ResultYes,
	"Nie": ResultNo,
	"N/D": ResultNA,
}

// NormalizeResult canonicalizes an audit answer. The second return value
// reports whether the input was a recognized answer.
func NormalizeResult(s string) (string, bool) {
	canonical, ok := resultAliases[s]
	return canonical, ok
}
