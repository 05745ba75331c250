package models

import (
	"bytes"
	"encoding/json"
)

// Text accepts any JSON scalar and keeps its textual form. Booking clients
// send guests and prices either as numbers or as strings.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*t = Text(buf.String())
	}
	return nil
}

func (t Text) String() string { return string(t) }

// BookingRequest is the hotel checkout payload.
type BookingRequest struct {
	TripID     Text `json:"tripId"`
	CheckIn    Text `json:"checkIn"`
	CheckOut   Text `json:"checkOut"`
	Guests     Text `json:"guests"`
	Name       Text `json:"name"`
	Email      Text `json:"email"`
	Phone      Text `json:"phone,omitempty"`
	TotalPrice Text `json:"totalPrice"`
}

// RideBookingRequest is the ride checkout payload.
type RideBookingRequest struct {
	RideOptionID Text `json:"rideOptionId"`
	RideID       Text `json:"rideId"`
	PickupTime   Text `json:"pickupTime"`
	Passengers   Text `json:"passengers"`
	Name         Text `json:"name"`
	Email        Text `json:"email"`
	Phone        Text `json:"phone"`
	TotalPrice   Text `json:"totalPrice"`
	Company      Text `json:"company"`
	VehicleType  Text `json:"vehicleType,omitempty"`
	Departure    Text `json:"departure,omitempty"`
	Destination  Text `json:"destination,omitempty"`
}
