// services/availability_service.go
package services

import (
	"errors"
	"time"

	mysql "github.com/go-sql-driver/mysql"

	"cruise-backend/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AvailabilityStore abstracts the capacity rows so the gate can be
// exercised without a database. FindByKey returns gorm.ErrRecordNotFound
// when no row tracks the key.
type AvailabilityStore interface {
	FindByKey(date time.Time, boatType, formula string) (*models.Availability, error)
	Save(rec *models.Availability) error
}

type gormAvailabilityStore struct {
	db *gorm.DB
}

func (s *gormAvailabilityStore) FindByKey(date time.Time, boatType, formula string) (*models.Availability, error) {
	var rec models.Availability
	err := s.db.
		Where("date = ? AND boat_type = ? AND formula = ?", date, boatType, formula).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *gormAvailabilityStore) Save(rec *models.Availability) error {
	return s.db.Save(rec).Error
}

// AvailabilityService gates bookings on the remaining capacity of a
// departure. A key with no row is unconstrained: the operator only
// creates rows for departures they want to cap, and a missing or broken
// lookup must never block a sale.
type AvailabilityService struct {
	Store AvailabilityStore
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{Store: &gormAvailabilityStore{db: db}}
}

// CheckAvailability reports whether at least one seat remains for the
// departure. Fail-open: no row, or any lookup error, counts as
// available.
func (s *AvailabilityService) CheckAvailability(date time.Time, boatType, formula string) bool {
	rec, err := s.Store.FindByKey(date, boatType, formula)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithFields(logrus.Fields{
				"date":      date.Format("2006-01-02"),
				"boat_type": boatType,
				"formula":   formula,
			}).WithError(err).Warn("availability lookup failed, treating as available")
		}
		return true
	}
	return rec.RemainingCapacity > 0
}

// DecrementRemaining takes one seat off the departure's counter after a
// booking. Best-effort: an untracked key is a no-op, the counter floors
// at zero, and failures are logged and swallowed since the booking is
// already committed when this runs.
//
// The read-then-write is unsynchronized: two bookings racing for the
// last seat can both pass the gate and leave the counter at zero while
// overbooking one seat. Known limitation, reconciled by the operator.
func (s *AvailabilityService) DecrementRemaining(date time.Time, boatType, formula string) {
	rec, err := s.Store.FindByKey(date, boatType, formula)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).Warn("capacity decrement lookup failed, skipping")
		}
		return
	}
	if rec.RemainingCapacity <= 0 {
		return
	}
	rec.RemainingCapacity--
	if err := s.Store.Save(rec); err != nil {
		logrus.WithFields(logrus.Fields{
			"date":      date.Format("2006-01-02"),
			"boat_type": boatType,
			"formula":   formula,
		}).WithError(err).Warn("capacity decrement write failed")
	}
}

func isDuplicateKeyErr(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

// SetRemaining creates or updates the capacity row for one departure
// key and returns the row as persisted. created reports whether a new
// row was written. Losing a create race to a concurrent admin edit
// falls back to updating the winning row.
func (s *AvailabilityService) SetRemaining(date time.Time, boatType, formula string, remaining int) (rec *models.Availability, created bool, err error) {
	rec, err = s.Store.FindByKey(date, boatType, formula)
	switch {
	case err == nil:
		rec.RemainingCapacity = remaining
		if err := s.Store.Save(rec); err != nil {
			return nil, false, err
		}
		return rec, false, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = &models.Availability{
			Date:              date,
			BoatType:          boatType,
			Formula:           formula,
			RemainingCapacity: remaining,
		}
		if cErr := s.Store.Save(rec); cErr != nil {
			if !isDuplicateKeyErr(cErr) {
				return nil, false, cErr
			}
			existing, fErr := s.Store.FindByKey(date, boatType, formula)
			if fErr != nil {
				return nil, false, cErr
			}
			existing.RemainingCapacity = remaining
			if sErr := s.Store.Save(existing); sErr != nil {
				return nil, false, sErr
			}
			return existing, false, nil
		}
		return rec, true, nil

	default:
		return nil, false, err
	}
}
