package services

import (
	"errors"
	"testing"
	"time"

	"cruise-backend/models"
)

type fakeGate struct {
	available     bool
	checkCalls    int
	decrementKeys []string
}

func (g *fakeGate) CheckAvailability(date time.Time, boatType, formula string) bool {
	g.checkCalls++
	return g.available
}

func (g *fakeGate) DecrementRemaining(date time.Time, boatType, formula string) {
	g.decrementKeys = append(g.decrementKeys, storeKey(date, boatType, formula))
}

type fakeReservationStore struct {
	created   []*models.Reservation
	createErr error
}

func (s *fakeReservationStore) Create(res *models.Reservation) error {
	if s.createErr != nil {
		return s.createErr
	}
	res.ID = uint(len(s.created) + 1)
	s.created = append(s.created, res)
	return nil
}

type fakeNotifier struct {
	operator chan *models.Reservation
	customer chan *models.Reservation
	err      error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		operator: make(chan *models.Reservation, 1),
		customer: make(chan *models.Reservation, 1),
	}
}

func (n *fakeNotifier) NotifyOperator(res *models.Reservation) error {
	n.operator <- res
	return n.err
}

func (n *fakeNotifier) NotifyCustomer(res *models.Reservation) error {
	n.customer <- res
	return n.err
}

func awaitNotification(t *testing.T, ch chan *models.Reservation, who string) *models.Reservation {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(2 * time.Second):
		t.Fatalf("no %s notification sent", who)
		return nil
	}
}

func validRequest() *ReservationRequest {
	return &ReservationRequest{
		BoatType:     BoatCatamaran,
		Formula:      FormulaBasseSaison,
		Date:         "2026-11-03",
		Adults:       2,
		Children:     0,
		ContactName:  "Jean Dupont",
		ContactEmail: "jean@example.com",
		ContactPhone: "+590 690 00 00 00",
	}
}

func newTestService(gate *fakeGate, store *fakeReservationStore, notifier ReservationNotifier) *ReservationService {
	return &ReservationService{Store: store, Gate: gate, Notifier: notifier}
}

func TestValidateRequestMissingFields(t *testing.T) {
	t.Parallel()

	fields := ValidateRequest(&ReservationRequest{})
	want := map[string]bool{
		"boat_type": true, "formula": true, "date": true,
		"adults": true, "contact_name": true, "contact_email": true, "contact_phone": true,
	}
	if len(fields) != len(want) {
		t.Fatalf("fields = %v, want %d entries", fields, len(want))
	}
	for _, f := range fields {
		if !want[f] {
			t.Errorf("unexpected field %q", f)
		}
	}
}

func TestValidateRequestBasseSaisonOnYacht(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.BoatType = BoatYacht // basse saison does not exist on the yacht
	fields := ValidateRequest(req)
	if len(fields) != 1 || fields[0] != "formula" {
		t.Fatalf("fields = %v, want [formula]", fields)
	}
}

func TestValidateRequestEdgeCases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*ReservationRequest)
		field  string
	}{
		{"zero adults", func(r *ReservationRequest) { r.Adults = 0 }, "adults"},
		{"negative children", func(r *ReservationRequest) { r.Children = -1 }, "children"},
		{"bad date", func(r *ReservationRequest) { r.Date = "03/11/2026" }, "date"},
		{"email without at", func(r *ReservationRequest) { r.ContactEmail = "jean.example.com" }, "contact_email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			fields := ValidateRequest(req)
			if len(fields) != 1 || fields[0] != tc.field {
				t.Fatalf("fields = %v, want [%s]", fields, tc.field)
			}
		})
	}
}

func TestSubmitReservationValidationFailurePersistsNothing(t *testing.T) {
	t.Parallel()

	gate := &fakeGate{available: true}
	store := &fakeReservationStore{}
	svc := newTestService(gate, store, nil)

	req := validRequest()
	req.ContactEmail = ""
	_, err := svc.SubmitReservation(req)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if gate.checkCalls != 0 {
		t.Error("availability must not be checked for an invalid request")
	}
	if len(store.created) != 0 {
		t.Error("nothing must be persisted for an invalid request")
	}
}

func TestSubmitReservationNoCapacity(t *testing.T) {
	t.Parallel()

	gate := &fakeGate{available: false}
	store := &fakeReservationStore{}
	svc := newTestService(gate, store, nil)

	_, err := svc.SubmitReservation(validRequest())
	if !errors.Is(err, ErrNoCapacity) {
		t.Fatalf("err = %v, want ErrNoCapacity", err)
	}
	if len(store.created) != 0 {
		t.Error("nothing must be persisted on a capacity conflict")
	}
	if len(gate.decrementKeys) != 0 {
		t.Error("capacity must not be decremented on a conflict")
	}
}

func TestSubmitReservationSuccess(t *testing.T) {
	t.Parallel()

	gate := &fakeGate{available: true}
	store := &fakeReservationStore{}
	notifier := newFakeNotifier()
	svc := newTestService(gate, store, notifier)

	res, err := svc.SubmitReservation(validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Status != models.ReservationPending {
		t.Errorf("status = %q, want pending", res.Status)
	}
	if res.TotalPrice != 204 || res.DepositAmount != 61 {
		t.Errorf("price = %d/%d, want 204/61", res.TotalPrice, res.DepositAmount)
	}
	if res.DepositPaid {
		t.Error("deposit must start unpaid")
	}
	if res.ReferenceCode == "" {
		t.Error("reference code missing")
	}
	if res.ID == 0 {
		t.Error("persisted reservation must carry its ID")
	}
	if len(store.created) != 1 {
		t.Fatalf("created %d reservations, want 1", len(store.created))
	}
	if len(gate.decrementKeys) != 1 {
		t.Fatalf("decrement called %d times, want 1", len(gate.decrementKeys))
	}

	if got := awaitNotification(t, notifier.operator, "operator"); got.ReferenceCode != res.ReferenceCode {
		t.Error("operator notified about a different reservation")
	}
	if got := awaitNotification(t, notifier.customer, "customer"); got.ReferenceCode != res.ReferenceCode {
		t.Error("customer notified about a different reservation")
	}
}

func TestSubmitReservationPersistFailureStillSucceeds(t *testing.T) {
	t.Parallel()

	gate := &fakeGate{available: true}
	store := &fakeReservationStore{createErr: errors.New("store down")}
	notifier := newFakeNotifier()
	svc := newTestService(gate, store, notifier)

	res, err := svc.SubmitReservation(validRequest())
	if err != nil {
		t.Fatalf("persist failure must not fail the booking, got %v", err)
	}
	if res.ID != 0 {
		t.Errorf("unpersisted echo must have ID 0, got %d", res.ID)
	}
	if res.TotalPrice != 204 {
		t.Errorf("echo must still be priced, got %d", res.TotalPrice)
	}
	if len(gate.decrementKeys) != 1 {
		t.Error("capacity must still be decremented")
	}
	awaitNotification(t, notifier.operator, "operator")
	awaitNotification(t, notifier.customer, "customer")
}

func TestSubmitReservationNotifierFailureSwallowed(t *testing.T) {
	t.Parallel()

	gate := &fakeGate{available: true}
	store := &fakeReservationStore{}
	notifier := newFakeNotifier()
	notifier.err = errors.New("smtp down")
	svc := newTestService(gate, store, notifier)

	res, err := svc.SubmitReservation(validRequest())
	if err != nil {
		t.Fatalf("email failure must not fail the booking, got %v", err)
	}
	if res.ID == 0 {
		t.Error("reservation must still be persisted")
	}
	awaitNotification(t, notifier.operator, "operator")
	awaitNotification(t, notifier.customer, "customer")
}
