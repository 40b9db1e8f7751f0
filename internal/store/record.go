package store

// Record is one persisted assessment result. Records are immutable once
// appended; Total is always the sum of the four category scores and the two
// labels are always derived from Total.
type Record struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // local calendar day, YYYY-MM-DD
	Focus       int    `json:"focus"`
	Discipline  int    `json:"discipline"`
	Execution   int    `json:"execution"`
	Consistency int    `json:"consistency"`
	Total       int    `json:"total"`
	MindType    string `json:"mindType"`
	Rank        string `json:"rank"`
}
