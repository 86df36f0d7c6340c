// internal/models/common.go
package models

// TravelerType categorizes travelers for personalized recommendations.
type TravelerType string

const (
	TravelerSolo       TravelerType = "solo"
	TravelerCouple     TravelerType = "couple"
	TravelerFamily     TravelerType = "family"
	TravelerBusiness   TravelerType = "business"
	TravelerBackpacker TravelerType = "backpacker"
	TravelerLuxury     TravelerType = "luxury"
	TravelerBudget     TravelerType = "budget"
)

// BudgetRange classifies options by price tier.
type BudgetRange string

const (
	BudgetRangeBudget   BudgetRange = "budget"
	BudgetRangeModerate BudgetRange = "moderate"
	BudgetRangeLuxury   BudgetRange = "luxury"
	BudgetRangePremium  BudgetRange = "premium"
)

// Location holds geographic location information.
type Location struct {
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`
}

// PriceInfo is the standardized price record shared across option types.
// OriginalAmount defaults to Amount; DiscountPercentage is derived when the
// two differ.
type PriceInfo struct {
	Amount             float64 `json:"amount"`
	Currency           string  `json:"currency"`
	OriginalAmount     float64 `json:"original_amount,omitempty"`
	DiscountPercentage float64 `json:"discount_percentage,omitempty"`
}

// NewPriceInfo constructs a normalized PriceInfo.
func NewPriceInfo(amount float64, currency string, originalAmount float64) PriceInfo {
	p := PriceInfo{Amount: amount, Currency: currency, OriginalAmount: originalAmount}
	p.Normalize()
	return p
}

// Normalize applies the derivation rules: missing original amount copies the
// current amount, and a price drop yields a discount percentage.
func (p *PriceInfo) Normalize() {
	if p.OriginalAmount == 0 {
		p.OriginalAmount = p.Amount
	}
	if p.DiscountPercentage == 0 && p.OriginalAmount != p.Amount && p.OriginalAmount != 0 {
		p.DiscountPercentage = ((p.OriginalAmount - p.Amount) / p.OriginalAmount) * 100
	}
}

// ContactInfo holds contact details for services and accommodations.
type ContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
	Address string `json:"address,omitempty"`
}

// Review holds standardized review information.
type Review struct {
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"review_count"`
	RecentRating     *float64 `json:"recent_rating,omitempty"`
	ReviewHighlights []string `json:"review_highlights"`
}

func (r *Review) EnsureDefaults() {
	if r.ReviewHighlights == nil {
		r.ReviewHighlights = []string{}
	}
}
