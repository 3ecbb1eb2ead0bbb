package model

// FilterType distinguishes the predicate family of a Filter.
type FilterType string

// Filter types.
const (
	FilterDate   FilterType = "date"
	FilterAmount FilterType = "amount"
)

// Operator is the comparison a Filter applies.
type Operator string

// Date operators.
const (
	OpAfter  Operator = "after"
	OpBefore Operator = "before"
)

// Amount operators.
const (
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpEqual        Operator = "="
	OpLessEqual    Operator = "<="
	OpLess         Operator = "<"
)

// DateOperators lists the operators offered for date filters.
var DateOperators = []Operator{OpAfter, OpBefore}

// AmountOperators lists the operators offered for amount filters.
var AmountOperators = []Operator{OpGreater, OpGreaterEqual, OpEqual, OpLessEqual, OpLess}

// Filter is a committed predicate narrowing the invoice list.
// Filters are values; once committed nothing rewrites them, including Display.
type Filter struct {
	ID       string     `json:"id"`
	Type     FilterType `json:"type"`
	Operator Operator   `json:"operator"`
	Value    string     `json:"value"`
	Display  string     `json:"display"`
	Preset   string     `json:"preset,omitempty"`
}
