package consumption

import "encoding/json"

// UsageDetails is the decoded body of a usage details response: a value
// array plus an optional continuation link.
type UsageDetails struct {
	Value    []UsageRecord `json:"value"`
	NextLink *string       `json:"nextLink"`
}

// UsageRecord is one entry of the value array. The provider's schema does
// not guarantee any of these fields, so all of them are pointers: nil means
// the field was absent from the wire record.
type UsageRecord struct {
	ID         *string          `json:"id"`
	Name       *string          `json:"name"`
	Properties *UsageProperties `json:"properties"`
}

// UsageProperties holds the billing fields the report consumes
type UsageProperties struct {
	UsageStart *string    `json:"usageStart"`
	PretaxCost *CostValue `json:"pretaxCost"`
}

// CostValue is a decimal cost kept as the literal wire text. The API emits
// the amount as a JSON number or a quoted string depending on the record;
// either way the token is preserved verbatim, with no float round-trip.
type CostValue string

// UnmarshalJSON implements json.Unmarshaler
func (c *CostValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CostValue(s)
		return nil
	}
	*c = CostValue(data)
	return nil
}

func (c CostValue) String() string {
	return string(c)
}
