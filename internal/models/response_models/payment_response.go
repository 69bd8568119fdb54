package response_models

type CreateIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

type PaymentMethodResponse struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Last4 string `json:"last4,omitempty"`
}
