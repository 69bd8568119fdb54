package response_models

type OnboardingResponse struct {
	OnboardingURL string `json:"onboarding_url"`
}

type AccountStatusResponse struct {
	ConnectedAccountID string `json:"connected_account_id"`
	ChargesEnabled     bool   `json:"charges_enabled"`
	PayoutsEnabled     bool   `json:"payouts_enabled"`
	DetailsSubmitted   bool   `json:"details_submitted"`
	TransfersActive    bool   `json:"transfers_active"`
}
