package request

type CreateTransactionRequest struct {
	Kind              string `json:"kind"`
	Date              string `json:"date"`
	Concept           string `json:"concept"`
	Owner             string `json:"owner"`
	MovementType      string `json:"movementType"`
	ExchangeRateLabel string `json:"exchangeRateLabel,omitempty"`
	AmountLocal       string `json:"amountLocal"`
}

type UpdateTransactionRequest struct {
	Date              *string `json:"date,omitempty"`
	Concept           *string `json:"concept,omitempty"`
	Owner             *string `json:"owner,omitempty"`
	MovementType      *string `json:"movementType,omitempty"`
	ExchangeRateLabel *string `json:"exchangeRateLabel,omitempty"`
	AmountLocal       *string `json:"amountLocal,omitempty"`
}

type CopyTransactionRequest struct {
	MonthDelta int `json:"monthDelta"`
}
