package db_models

// Account is the transacting identity of a platform user. The user record
// itself (credentials, profile) is owned by an external collaborator; this
// core only reads and writes the processor-side identifiers hanging off it.
type Account struct {
	BaseModel
	Email string `gorm:"unique"`
	Role  string `gorm:"default:user"` // "user" | "admin"

	// Payer identity at the processor. Nil until the first payment.
	CustomerID *string `gorm:"index"`

	// Payee identity at the processor. Set iff vendor onboarding has been
	// initiated; transfers must be rejected while nil.
	ConnectedAccountID *string `gorm:"index"`

	// Onboarding link issued by the processor. Cleared together with
	// ConnectedAccountID on deletion.
	ConnectedAccountLink *string

	Transactions []Transaction `gorm:"foreignKey:UserID"`
}

func (a *Account) IsOnboarded() bool {
	return a.ConnectedAccountID != nil && *a.ConnectedAccountID != ""
}
