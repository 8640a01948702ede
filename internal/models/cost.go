package models

// CostLineItem represents the unblended cost of one AWS service over the report window
type CostLineItem struct {
	Service string
	Amount  float64
	Unit    string // e.g. USD
}
