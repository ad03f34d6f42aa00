package request

type CreateHoldingRequest struct {
	Owner           string  `json:"owner"`
	AssetType       string  `json:"assetType"`
	Description     string  `json:"description,omitempty"`
	Ticker          string  `json:"ticker,omitempty"`
	Quantity        float64 `json:"quantity"`
	AcquisitionDate string  `json:"acquisitionDate"`
}

type UpdateHoldingRequest struct {
	Owner           *string  `json:"owner,omitempty"`
	AssetType       *string  `json:"assetType,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Ticker          *string  `json:"ticker,omitempty"`
	Quantity        *float64 `json:"quantity,omitempty"`
	AcquisitionDate *string  `json:"acquisitionDate,omitempty"`
}
