package db_models

type BillingPeriod string

const (
	PeriodDay   BillingPeriod = "day"
	PeriodWeek  BillingPeriod = "week"
	PeriodMonth BillingPeriod = "month"
	PeriodYear  BillingPeriod = "year"
)

// Plan mirrors a processor-side product/price pair so the catalog can be
// listed without a gateway round trip per request.
type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g. "pro_monthly"
	Name        string
	Description *string
	Period      BillingPeriod
	PriceMinor  int64  // already minor units at this layer, no conversion
	Currency    string `gorm:"size:3"`
	IsActive    bool   `gorm:"default:true"`

	ProviderProductID string `gorm:"index"`
	ProviderPriceID   string `gorm:"index"`
}
