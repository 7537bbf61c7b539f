package api

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// InsertedResponse reports the id of a newly created document.
type InsertedResponse struct {
	InsertedID string `json:"insertedId"`
}

// CountResponse carries a single count, used by pagination endpoints.
type CountResponse struct {
	Count int64 `json:"count"`
}

// PaymentIntentResponse carries the gateway client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
