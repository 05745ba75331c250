package checkout

import (
	"encoding/json"
	"fmt"
)

// Fields is a decoded JSON object whose values are left raw so that key
// presence can be checked independently of the value types.
type Fields map[string]json.RawMessage

var (
	HotelRequiredFields = []string{"tripId", "checkIn", "checkOut", "guests", "name", "email", "totalPrice"}
	RideRequiredFields  = []string{"rideOptionId", "rideId", "pickupTime", "passengers", "name", "email", "phone", "totalPrice", "company"}
)

// ValidateRequired fails on the first field of required that is absent.
func ValidateRequired(fields Fields, required []string) error {
	for _, name := range required {
		if _, ok := fields[name]; !ok {
			return NewMissingFieldError(name)
		}
	}
	return nil
}

// Decode copies fields into dst.
func (f Fields) Decode(dst any) error {
	b, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode fields: %w", err)
	}
	return nil
}
