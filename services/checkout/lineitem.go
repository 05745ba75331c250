package checkout

import (
	"fmt"

	"tripcheckout/models"
)

func hotelLineItem(req models.BookingRequest, currency string, amount int64) LineItem {
	return LineItem{
		Name: fmt.Sprintf("Booking for Hotel ID: %s", req.TripID),
		Description: fmt.Sprintf("Stay from %s to %s - %s guests",
			req.CheckIn, req.CheckOut, req.Guests),
		Currency:   currency,
		UnitAmount: amount,
		Quantity:   1,
	}
}

func rideLineItem(req models.RideBookingRequest, currency string, amount int64) LineItem {
	name := fmt.Sprintf("Ride with %s", req.Company)
	if req.VehicleType != "" {
		name = fmt.Sprintf("%s (%s)", name, req.VehicleType)
	}
	desc := fmt.Sprintf("Pickup at %s", req.PickupTime)
	if req.Departure != "" && req.Destination != "" {
		desc = fmt.Sprintf("%s from %s to %s", desc, req.Departure, req.Destination)
	}
	desc = fmt.Sprintf("%s - %s passengers", desc, req.Passengers)

	return LineItem{
		Name:        name,
		Description: desc,
		Currency:    currency,
		UnitAmount:  amount,
		Quantity:    1,
	}
}
