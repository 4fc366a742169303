// Package dto defines data transfer objects for the Marketstack API responses.
package dto

// EndOfDayResponse represents the JSON response from the Marketstack /eod
// and /intraday endpoints. Error payloads carry the Error field instead of
// Data.
type EndOfDayResponse struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
	Data []struct {
		Symbol string  `json:"symbol"`
		Open   float64 `json:"open"`
		High   float64 `json:"high"`
		Low    float64 `json:"low"`
		Close  float64 `json:"close"`
		Volume float64 `json:"volume"`
		Date   string  `json:"date"`
	} `json:"data"`
}
