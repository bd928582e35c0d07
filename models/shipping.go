package models

// ShippingDetails is the delivery address captured at checkout.
type ShippingDetails struct {
	Name     string `json:"name" validate:"notblank"`
	Line1    string `json:"line1" validate:"notblank"`
	Line2    string `json:"line2,omitempty"`
	Line3    string `json:"line3,omitempty"`
	City     string `json:"city" validate:"notblank"`
	State    string `json:"state" validate:"notblank"`
	Zip      string `json:"zip,omitempty"`
	Country  string `json:"country" validate:"notblank"`
	GiftWrap bool   `json:"gift_wrap"`
}

var shippingMessages = map[string]string{
	"name":    "Please enter a name",
	"line1":   "Please enter the first address line",
	"city":    "Please enter a city name",
	"state":   "Please enter a state name",
	"country": "Please enter a country name",
}

// Validate checks the required address fields.
func (s ShippingDetails) Validate() ValidationResult {
	return checkStruct(s, shippingMessages)
}
