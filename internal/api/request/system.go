package request

type SetMarketKeyRequest struct {
	APIKey string `json:"apiKey"`
}

type RecordSavedAmountRequest struct {
	Period string `json:"period"`
	Amount string `json:"amount"`
}
