package pricing

// RateQuote is one named-source quote as returned by the exchange-rate
// provider. The provider returns a list of sources; the gateway extracts the
// buy quote of its preferred source.
type RateQuote struct {
	Source    string  `json:"origen"`
	Buy       float64 `json:"compra"`
	Sell      float64 `json:"venta"`
	UpdatedAt string  `json:"fechaActualizacion"`
}

// equityQuoteResponse mirrors the market-data provider's equity quote
// response. Prices arrive as strings.
type equityQuoteResponse struct {
	GlobalQuote struct {
		Symbol string `json:"01. symbol"`
		Price  string `json:"05. price"`
	} `json:"Global Quote"`
	Note         string `json:"Note"`
	ErrorMessage string `json:"Error Message"`
}

// cryptoQuoteResponse mirrors the market-data provider's crypto exchange
// rate response, a different shape from the equity one.
type cryptoQuoteResponse struct {
	ExchangeRate struct {
		FromSymbol string `json:"1. From_Currency Code"`
		ToSymbol   string `json:"3. To_Currency Code"`
		Rate       string `json:"5. Exchange Rate"`
	} `json:"Realtime Currency Exchange Rate"`
	Note         string `json:"Note"`
	ErrorMessage string `json:"Error Message"`
}
