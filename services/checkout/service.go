package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripcheckout/config"
	"tripcheckout/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Redirects are the pages the provider sends the customer back to.
type Redirects struct {
	SuccessURL string
	CancelURL  string
}

// Service creates provider checkout sessions for hotel and ride bookings.
type Service struct {
	sessions       SessionCreator
	publisher      RecordPublisher
	recorder       Recorder
	converter      *Converter
	logger         *zap.Logger
	hotel          Redirects
	ride           Redirects
	sourceCurrency string
	destCurrency   string
}

// NewService wires a Service from cfg. A nil publisher disables auditing.
func NewService(cfg config.Config, sessions SessionCreator, publisher RecordPublisher, logger *zap.Logger) (*Service, error) {
	rate, err := cfg.Rate()
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		return nil, fmt.Errorf("checkout: session creator is required")
	}
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sessions:       sessions,
		publisher:      publisher,
		recorder:       nopRecorder{},
		converter:      NewConverter(rate),
		logger:         logger,
		hotel:          Redirects{SuccessURL: cfg.SuccessURL, CancelURL: cfg.CancelURL},
		ride:           Redirects{SuccessURL: cfg.RideSuccessURL, CancelURL: cfg.RideCancelURL},
		sourceCurrency: strings.ToLower(cfg.SourceCurrency),
		destCurrency:   strings.ToLower(cfg.DestCurrency),
	}, nil
}

// WithRecorder sets where checkout outcomes are reported.
func (s *Service) WithRecorder(r Recorder) *Service {
	if r != nil {
		s.recorder = r
	}
	return s
}

// CreateHotelCheckout validates a hotel booking and opens a checkout session for it.
func (s *Service) CreateHotelCheckout(ctx context.Context, fields Fields) (*models.CheckoutSession, error) {
	start := time.Now()
	session, err := s.createHotel(ctx, fields)
	s.observe(models.CheckoutKindHotel, start, err)
	return session, err
}

// CreateRideCheckout validates a ride booking and opens a checkout session for it.
func (s *Service) CreateRideCheckout(ctx context.Context, fields Fields) (*models.CheckoutSession, error) {
	start := time.Now()
	session, err := s.createRide(ctx, fields)
	s.observe(models.CheckoutKindRide, start, err)
	return session, err
}

func (s *Service) observe(kind string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(AsError(err).Kind)
	}
	s.recorder.ObserveCheckout(kind, outcome, time.Since(start).Seconds())
}

func (s *Service) createHotel(ctx context.Context, fields Fields) (*models.CheckoutSession, error) {
	logger := s.logger.With(zap.String("kind", models.CheckoutKindHotel))
	logger.Info("Received payment request", zap.String("tripId", referenceOf(fields, "tripId")))

	if err := ValidateRequired(fields, HotelRequiredFields); err != nil {
		logger.Error("checkout validation failed", zap.Error(err))
		return nil, err
	}

	var req models.BookingRequest
	if err := fields.Decode(&req); err != nil {
		logger.Error("checkout decode failed", zap.Error(err))
		return nil, NewUnexpectedError(err)
	}

	conv, err := s.convert(logger, req.TotalPrice)
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{
		"tripId":   req.TripID.String(),
		"checkIn":  req.CheckIn.String(),
		"checkOut": req.CheckOut.String(),
		"guests":   req.Guests.String(),
		"name":     req.Name.String(),
		"email":    req.Email.String(),
		"phone":    req.Phone.String(),
	}
	s.addPriceMetadata(metadata, conv)

	params := SessionParams{
		LineItems:          []LineItem{hotelLineItem(req, s.destCurrency, conv.MinorUnits)},
		PaymentMethodTypes: []string{"card"},
		Mode:               "payment",
		SuccessURL:         s.hotel.SuccessURL,
		CancelURL:          s.hotel.CancelURL,
		CustomerEmail:      req.Email.String(),
		Metadata:           metadata,
	}

	return s.open(ctx, logger, params, models.CheckoutRecord{
		Kind:      models.CheckoutKindHotel,
		Reference: req.TripID.String(),
		Email:     req.Email.String(),
	}, conv)
}

func (s *Service) createRide(ctx context.Context, fields Fields) (*models.CheckoutSession, error) {
	logger := s.logger.With(zap.String("kind", models.CheckoutKindRide))
	logger.Info("Received payment request", zap.String("rideId", referenceOf(fields, "rideId")))

	if err := ValidateRequired(fields, RideRequiredFields); err != nil {
		logger.Error("checkout validation failed", zap.Error(err))
		return nil, err
	}

	var req models.RideBookingRequest
	if err := fields.Decode(&req); err != nil {
		logger.Error("checkout decode failed", zap.Error(err))
		return nil, NewUnexpectedError(err)
	}

	conv, err := s.convert(logger, req.TotalPrice)
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{
		"bookingType":  models.CheckoutKindRide,
		"rideOptionId": req.RideOptionID.String(),
		"rideId":       req.RideID.String(),
		"pickupTime":   req.PickupTime.String(),
		"passengers":   req.Passengers.String(),
		"name":         req.Name.String(),
		"email":        req.Email.String(),
		"phone":        req.Phone.String(),
		"company":      req.Company.String(),
		"vehicleType":  req.VehicleType.String(),
		"departure":    req.Departure.String(),
		"destination":  req.Destination.String(),
	}
	s.addPriceMetadata(metadata, conv)

	params := SessionParams{
		LineItems:          []LineItem{rideLineItem(req, s.destCurrency, conv.MinorUnits)},
		PaymentMethodTypes: []string{"card"},
		Mode:               "payment",
		SuccessURL:         s.ride.SuccessURL,
		CancelURL:          s.ride.CancelURL,
		CustomerEmail:      req.Email.String(),
		Metadata:           metadata,
	}

	return s.open(ctx, logger, params, models.CheckoutRecord{
		Kind:      models.CheckoutKindRide,
		Reference: req.RideID.String(),
		Email:     req.Email.String(),
	}, conv)
}

func (s *Service) convert(logger *zap.Logger, total models.Text) (Conversion, error) {
	conv, err := s.converter.Convert(total.String())
	if err != nil {
		logger.Error("invalid totalPrice", zap.String("totalPrice", total.String()), zap.Error(err))
		return Conversion{}, err
	}
	logger.Info("converted price",
		zap.String("from", conv.SourceString()+" "+strings.ToUpper(s.sourceCurrency)),
		zap.String("to", conv.DestString()+" "+strings.ToUpper(s.destCurrency)),
		zap.Int64("minorUnits", conv.MinorUnits),
	)
	return conv, nil
}

func (s *Service) addPriceMetadata(md map[string]string, conv Conversion) {
	md["totalPrice"+strings.ToUpper(s.sourceCurrency)] = conv.SourceString()
	md["totalPrice"+strings.ToUpper(s.destCurrency)] = conv.DestString()
}

// open calls the provider once and publishes the audit record on success.
func (s *Service) open(ctx context.Context, logger *zap.Logger, params SessionParams, rec models.CheckoutRecord, conv Conversion) (*models.CheckoutSession, error) {
	id, err := s.sessions.CreateSession(ctx, params)
	if err != nil {
		ce := AsError(err)
		logger.Error("checkout session creation failed",
			zap.String("errorKind", string(ce.Kind)),
			zap.Error(err),
		)
		return nil, ce
	}
	logger.Info("checkout session created", zap.String("sessionId", id))

	rec.ID = uuid.New().String()
	rec.SessionID = id
	rec.AmountSource = conv.SourceString()
	rec.AmountMinor = conv.MinorUnits
	rec.SourceCurrency = s.sourceCurrency
	rec.DestCurrency = s.destCurrency
	rec.Metadata = params.Metadata
	rec.CreatedAt = time.Now().UTC()
	if err := s.publisher.Publish(ctx, rec); err != nil {
		logger.Warn("failed to publish checkout record", zap.String("sessionId", id), zap.Error(err))
	}

	return &models.CheckoutSession{ID: id}, nil
}

// referenceOf extracts a field for log context before validation has run.
func referenceOf(fields Fields, name string) string {
	raw, ok := fields[name]
	if !ok {
		return "unknown"
	}
	var t models.Text
	if err := t.UnmarshalJSON(raw); err != nil {
		return "unknown"
	}
	return t.String()
}
