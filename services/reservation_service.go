// services/reservation_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cruise-backend/models"
	"cruise-backend/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrNoCapacity is returned when the availability gate rejects the
// requested departure. It is the only business failure surfaced to the
// customer after validation.
var ErrNoCapacity = errors.New("no remaining capacity for the requested departure")

// ValidationError lists the request fields that were missing or
// invalid. Nothing is persisted when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid reservation request: " + strings.Join(e.Fields, ", ")
}

// ReservationRequest is the submission payload from the booking form.
type ReservationRequest struct {
	BoatType string `json:"boat_type"`
	Formula  string `json:"formula"`
	Date     string `json:"date"` // YYYY-MM-DD
	Adults   int    `json:"adults"`
	Children int    `json:"children"`

	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Message      string `json:"message"`
}

// AvailabilityGate is what the submission flow needs from the
// availability service.
type AvailabilityGate interface {
	CheckAvailability(date time.Time, boatType, formula string) bool
	DecrementRemaining(date time.Time, boatType, formula string)
}

// ReservationNotifier delivers the two booking emails. Delivery is
// fire-and-forget for the submission flow.
type ReservationNotifier interface {
	NotifyOperator(res *models.Reservation) error
	NotifyCustomer(res *models.Reservation) error
}

// ReservationStore persists reservations.
type ReservationStore interface {
	Create(res *models.Reservation) error
}

type gormReservationStore struct {
	db *gorm.DB
}

func (s *gormReservationStore) Create(res *models.Reservation) error {
	return s.db.Create(res).Error
}

type ReservationService struct {
	Store    ReservationStore
	Gate     AvailabilityGate
	Notifier ReservationNotifier
}

func NewReservationService(db *gorm.DB, gate *AvailabilityService, notifier ReservationNotifier) *ReservationService {
	return &ReservationService{
		Store:    &gormReservationStore{db: db},
		Gate:     gate,
		Notifier: notifier,
	}
}

// ValidateRequest returns the names of missing or invalid fields, empty
// when the request is well-formed. The basse-saison formula only exists
// on the catamaran, so that pairing is a validation failure regardless
// of availability.
func ValidateRequest(req *ReservationRequest) []string {
	var fields []string

	if strings.TrimSpace(req.BoatType) == "" {
		fields = append(fields, "boat_type")
	} else if !ValidBoatType(req.BoatType) {
		fields = append(fields, "boat_type")
	}

	if strings.TrimSpace(req.Formula) == "" {
		fields = append(fields, "formula")
	} else if ValidBoatType(req.BoatType) && !ValidFormula(req.BoatType, req.Formula) {
		fields = append(fields, "formula")
	}

	if strings.TrimSpace(req.Date) == "" {
		fields = append(fields, "date")
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		fields = append(fields, "date")
	}

	if req.Adults < 1 {
		fields = append(fields, "adults")
	}
	if req.Children < 0 {
		fields = append(fields, "children")
	}

	if strings.TrimSpace(req.ContactName) == "" {
		fields = append(fields, "contact_name")
	}
	if strings.TrimSpace(req.ContactEmail) == "" || !strings.Contains(req.ContactEmail, "@") {
		fields = append(fields, "contact_email")
	}
	if strings.TrimSpace(req.ContactPhone) == "" {
		fields = append(fields, "contact_phone")
	}

	return fields
}

// SubmitReservation runs the booking flow: validate, gate on capacity,
// price, persist as pending, decrement capacity, send the two emails.
//
// Only validation and the capacity gate can fail the request. Past
// that point every step degrades to log-and-continue: a reservation the
// customer believes in but the store missed beats a failed confirmation
// for an infrastructure hiccup.
func (s *ReservationService) SubmitReservation(req *ReservationRequest) (*models.Reservation, error) {
	if fields := ValidateRequest(req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"date"}}
	}

	if !s.Gate.CheckAvailability(date, req.BoatType, req.Formula) {
		return nil, ErrNoCapacity
	}

	total, deposit := ComputePrice(req.BoatType, req.Formula, req.Adults, req.Children)

	res := &models.Reservation{
		ReferenceCode: utils.NewReferenceCode(),
		BoatType:      req.BoatType,
		Formula:       req.Formula,
		Date:          date,
		Adults:        req.Adults,
		Children:      req.Children,
		ContactName:   strings.TrimSpace(req.ContactName),
		ContactEmail:  strings.TrimSpace(req.ContactEmail),
		ContactPhone:  strings.TrimSpace(req.ContactPhone),
		Message:       strings.TrimSpace(req.Message),
		Status:        models.ReservationPending,
		TotalPrice:    total,
		DepositAmount: deposit,
		DepositPaid:   false,
	}

	if err := s.Store.Create(res); err != nil {
		// Echo the priced reservation back anyway; the customer keeps a
		// usable confirmation and the operator reconciles from the
		// notification email.
		logrus.WithField("reference", res.ReferenceCode).
			WithError(err).Error("reservation persist failed, returning unpersisted echo")
	}

	s.Gate.DecrementRemaining(date, req.BoatType, req.Formula)

	if s.Notifier != nil {
		go func() {
			if err := s.Notifier.NotifyOperator(res); err != nil {
				logrus.WithField("reference", res.ReferenceCode).
					WithError(err).Warn("operator notification failed")
			}
		}()
		go func() {
			if err := s.Notifier.NotifyCustomer(res); err != nil {
				logrus.WithField("reference", res.ReferenceCode).
					WithError(err).Warn("customer confirmation failed")
			}
		}()
	}

	return res, nil
}

// ConfirmationMessage is the human-readable line shown on the booking
// confirmation screen.
func ConfirmationMessage(res *models.Reservation) string {
	return fmt.Sprintf(
		"Reservation %s registered for %s. Total %d€, deposit %d€ due to confirm.",
		res.ReferenceCode, res.Date.Format("02/01/2006"), res.TotalPrice, res.DepositAmount,
	)
}
