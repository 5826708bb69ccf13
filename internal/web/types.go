package web

// Operators is the fixed set offered by the form's operator selector.
var Operators = []string{"+", "-", "*", "/"}

// PageData is the view model for the calculator page.
type PageData struct {
	// Raw form values echoed back so the inputs keep their contents
	// across a submit.
	OperandA string
	OperandB string
	Operator string

	// Result holds the rendered calculation ("10 + 5 = 15") after a
	// successful compute; Error holds the failure message. At most one
	// of the two is set.
	Result string
	Error  string

	History   []string
	Operators []string
}

// HistoryResponse is the JSON payload of GET /api/history.
type HistoryResponse struct {
	History []string `json:"history"`
	Count   int      `json:"count"`
}
