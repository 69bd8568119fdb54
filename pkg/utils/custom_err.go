package utils

import "errors"

var (
	// NotFound
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPlanNotFound        = errors.New("plan not found")

	// InvalidState
	ErrAlreadyOnboarded         = errors.New("vendor already onboarded")
	ErrNotOnboarded             = errors.New("vendor not onboarded")
	ErrOnboardingLinkFailed     = errors.New("onboarding link creation failed")
	ErrNoCustomer               = errors.New("no customer exists for user")
	ErrVendorNotOnboarded       = errors.New("vendor has no connected account")
	ErrVendorNotEligible        = errors.New("vendor transfers capability not active")
	ErrPaymentNotSucceeded      = errors.New("payment intent has not succeeded")
	ErrNoPaymentIntentOnInvoice = errors.New("latest invoice has no payment intent")

	// ValidationError
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter ISO code")
	ErrInvalidInterval = errors.New("interval must be day, week, month or year")

	// A gateway call succeeded but the local ledger write did not. Surfaced
	// distinctly so an operator triggers reconciliation instead of assuming
	// the money movement never happened.
	ErrLedgerWrite = errors.New("ledger write failed after gateway success")

	ErrDatabaseError = errors.New("database error")
)
