package models

import "time"

// CheckoutSession is returned to the client after the provider accepted the session.
type CheckoutSession struct {
	ID string `json:"id"`
}

const (
	CheckoutKindHotel = "hotel"
	CheckoutKindRide  = "ride"
)

// CheckoutRecord is the audit snapshot of a created checkout session.
type CheckoutRecord struct {
	ID             string            `bson:"id" json:"id"`
	SessionID      string            `bson:"sessionId" json:"sessionId"`
	Kind           string            `bson:"kind" json:"kind"`           // hotel or ride
	Reference      string            `bson:"reference" json:"reference"` // tripId or rideId
	Email          string            `bson:"email" json:"email"`
	AmountSource   string            `bson:"amountSource" json:"amountSource"`
	AmountMinor    int64             `bson:"amountMinor" json:"amountMinor"`
	SourceCurrency string            `bson:"sourceCurrency" json:"sourceCurrency"`
	DestCurrency   string            `bson:"destCurrency" json:"destCurrency"`
	Metadata       map[string]string `bson:"metadata" json:"metadata"`
	CreatedAt      time.Time         `bson:"createdAt" json:"createdAt"`
}
