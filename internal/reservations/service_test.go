package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinely/internal/loyalty"
	"cinely/internal/notifications"
	"cinely/internal/payments"
	"cinely/internal/seats"
	"cinely/internal/users"
)

// fakeLedger is an in-memory Repository. failInsertAfter > 0 makes the
// Nth insert fail, which lets tests observe the no-compensation behavior.
type fakeLedger struct {
	reservations    []Reservation
	failInsertAfter int
	inserts         int
}

func (f *fakeLedger) GetAll(ctx context.Context) ([]Reservation, error) {
	return f.reservations, nil
}

func (f *fakeLedger) GetByProjectionID(ctx context.Context, projectionID uuid.UUID) ([]Reservation, error) {
	var out []Reservation
	for _, r := range f.reservations {
		if r.ProjectionID == projectionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLedger) GetByUserID(ctx context.Context, userID uuid.UUID) ([]Reservation, error) {
	var out []Reservation
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLedger) Insert(ctx context.Context, reservation *Reservation) error {
	if f.failInsertAfter > 0 && f.inserts >= f.failInsertAfter {
		return errors.New("duplicate key value violates unique constraint")
	}
	f.inserts++
	f.reservations = append(f.reservations, *reservation)
	return nil
}

func (f *fakeLedger) DeleteByProjectionID(ctx context.Context, projectionID uuid.UUID) (int64, error) {
	var kept []Reservation
	var removed int64
	for _, r := range f.reservations {
		if r.ProjectionID == projectionID {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	f.reservations = kept
	return removed, nil
}

// fakeSeatDirectory resolves seat ids to fixed grid positions.
type fakeSeatDirectory struct {
	seats map[uuid.UUID]seats.Seat
}

func newFakeSeatDirectory() *fakeSeatDirectory {
	return &fakeSeatDirectory{seats: make(map[uuid.UUID]seats.Seat)}
}

func (f *fakeSeatDirectory) addSeat(row, number int) uuid.UUID {
	id := uuid.New()
	f.seats[id] = seats.Seat{ID: id, Row: row, Number: number}
	return id
}

func (f *fakeSeatDirectory) GetSeat(ctx context.Context, id uuid.UUID) (*seats.Seat, error) {
	seat, ok := f.seats[id]
	if !ok {
		return nil, seats.ErrSeatNotFound
	}
	return &seat, nil
}

func (f *fakeSeatDirectory) GetSeatsByIDs(ctx context.Context, ids []uuid.UUID) ([]seats.Seat, error) {
	out := make([]seats.Seat, 0, len(ids))
	for _, id := range ids {
		seat, ok := f.seats[id]
		if !ok {
			return nil, seats.ErrSeatNotFound
		}
		out = append(out, seat)
	}
	return out, nil
}

func (f *fakeSeatDirectory) GetSeatsByAuditorium(ctx context.Context, auditoriumID uuid.UUID) ([]seats.Seat, error) {
	return nil, nil
}

type fakePayment struct {
	result payments.Result
}

func (f *fakePayment) MakePayment() payments.Result {
	return f.result
}

type fakeLoyalty struct {
	err       error
	calls     int
	lastCount int
}

var _ loyalty.Service = (*fakeLoyalty)(nil)

func (f *fakeLoyalty) IncreaseBonus(ctx context.Context, userID uuid.UUID, count int) (*users.User, error) {
	f.calls++
	f.lastCount = count
	if f.err != nil {
		return nil, f.err
	}
	return &users.User{ID: userID, Email: "user@example.com", BonusPoints: count}, nil
}

func (f *fakeLoyalty) GetBonus(ctx context.Context, userID uuid.UUID) (int, error) {
	return 0, nil
}

type countingProducer struct {
	published []*notifications.ReservationNotification
}

func (p *countingProducer) PublishReservationNotification(ctx context.Context, n *notifications.ReservationNotification) error {
	p.published = append(p.published, n)
	return nil
}

func (p *countingProducer) Close() error { return nil }

type serviceFixture struct {
	service  Service
	ledger   *fakeLedger
	seats    *fakeSeatDirectory
	payment  *fakePayment
	loyalty  *fakeLoyalty
	producer *countingProducer
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		ledger:   &fakeLedger{},
		seats:    newFakeSeatDirectory(),
		payment:  &fakePayment{result: payments.Result{IsSuccess: true, Message: "Payment approved"}},
		loyalty:  &fakeLoyalty{},
		producer: &countingProducer{},
	}
	f.service = NewService(f.ledger, f.seats, f.payment, f.loyalty, f.producer)
	return f
}

func (f *serviceFixture) reserveDirectly(seatID, projectionID, userID uuid.UUID) {
	f.ledger.reservations = append(f.ledger.reservations, Reservation{
		ID:           uuid.New(),
		SeatID:       seatID,
		ProjectionID: projectionID,
		UserID:       userID,
	})
}

func TestCheckAvailability_EmptyLedger(t *testing.T) {
	f := newServiceFixture()
	projectionID := uuid.New()

	result, err := f.service.CheckAvailability(context.Background(), []uuid.UUID{uuid.New(), uuid.New()}, &projectionID)

	require.NoError(t, err)
	assert.True(t, result.AreFree)
	assert.Equal(t, "There are no reservations", result.InfoMessage)
	assert.Empty(t, result.TakenSeatIDs)
}

func TestCheckAvailability_DisjointSeatsAreFree(t *testing.T) {
	f := newServiceFixture()
	projectionID := uuid.New()
	f.reserveDirectly(uuid.New(), projectionID, uuid.New())

	result, err := f.service.CheckAvailability(context.Background(), []uuid.UUID{uuid.New(), uuid.New()}, &projectionID)

	require.NoError(t, err)
	assert.True(t, result.AreFree)
	assert.Equal(t, "Seats are free to reserve", result.InfoMessage)
	assert.Empty(t, result.TakenSeatIDs)
}

func TestCheckAvailability_TakenSeatsAreExactIntersection(t *testing.T) {
	f := newServiceFixture()
	projectionID := uuid.New()
	taken1 := uuid.New()
	taken2 := uuid.New()
	free := uuid.New()
	f.reserveDirectly(taken1, projectionID, uuid.New())
	f.reserveDirectly(taken2, projectionID, uuid.New())
	f.reserveDirectly(uuid.New(), projectionID, uuid.New())

	result, err := f.service.CheckAvailability(context.Background(), []uuid.UUID{taken1, free, taken2}, &projectionID)

	require.NoError(t, err)
	assert.False(t, result.AreFree)
	assert.Equal(t, "Some of seats are already reserved", result.InfoMessage)
	assert.ElementsMatch(t, []uuid.UUID{taken1, taken2}, result.TakenSeatIDs)
}

func TestCheckAvailability_ScopedByProjection(t *testing.T) {
	f := newServiceFixture()
	seatID := uuid.New()
	projection1 := uuid.New()
	projection2 := uuid.New()
	f.reserveDirectly(seatID, projection1, uuid.New())

	scoped, err := f.service.CheckAvailability(context.Background(), []uuid.UUID{seatID}, &projection1)
	require.NoError(t, err)
	assert.False(t, scoped.AreFree)
	assert.Equal(t, []uuid.UUID{seatID}, scoped.TakenSeatIDs)

	// The same seat is free for a different projection.
	other, err := f.service.CheckAvailability(context.Background(), []uuid.UUID{seatID}, &projection2)
	require.NoError(t, err)
	assert.True(t, other.AreFree)
	assert.Empty(t, other.TakenSeatIDs)
}

func TestCheckAvailability_Unscoped(t *testing.T) {
	f := newServiceFixture()
	seatID := uuid.New()
	f.reserveDirectly(seatID, uuid.New(), uuid.New())

	result, err := f.service.CheckAvailability(context.Background(), []uuid.UUID{seatID}, nil)

	require.NoError(t, err)
	assert.False(t, result.AreFree)
	assert.Equal(t, []uuid.UUID{seatID}, result.TakenSeatIDs)
}

func TestCheckAdjacency_EmptyInputYieldsNoResult(t *testing.T) {
	f := newServiceFixture()

	result, err := f.service.CheckAdjacency(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestCheckAdjacency_SingleSeat(t *testing.T) {
	f := newServiceFixture()
	seatID := f.seats.addSeat(1, 4)

	result, err := f.service.CheckAdjacency(context.Background(), []uuid.UUID{seatID})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Succeeded)
	assert.Equal(t, "You passed only one seet", result.InfoMessage)
}

func TestCheckAdjacency_DifferentRows(t *testing.T) {
	f := newServiceFixture()
	ids := []uuid.UUID{
		f.seats.addSeat(1, 1),
		f.seats.addSeat(1, 2),
		f.seats.addSeat(2, 3),
	}

	result, err := f.service.CheckAdjacency(context.Background(), ids)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Succeeded)
	assert.Equal(t, "Seets are not next to each other and they are not in same row", result.InfoMessage)
}

func TestCheckAdjacency_GapInRow(t *testing.T) {
	f := newServiceFixture()
	ids := []uuid.UUID{
		f.seats.addSeat(1, 1),
		f.seats.addSeat(1, 2),
		f.seats.addSeat(1, 5),
	}

	result, err := f.service.CheckAdjacency(context.Background(), ids)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Succeeded)
	assert.Equal(t, "Seets are not next to each other and exceeding the row", result.InfoMessage)
}

func TestCheckAdjacency_UnorderedContiguousRun(t *testing.T) {
	f := newServiceFixture()
	ids := []uuid.UUID{
		f.seats.addSeat(1, 3),
		f.seats.addSeat(1, 1),
		f.seats.addSeat(1, 2),
	}

	result, err := f.service.CheckAdjacency(context.Background(), ids)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Succeeded)
	assert.Empty(t, result.InfoMessage)
}

func TestCheckAdjacency_UnknownSeatIsAnError(t *testing.T) {
	f := newServiceFixture()
	ids := []uuid.UUID{f.seats.addSeat(1, 1), uuid.New()}

	result, err := f.service.CheckAdjacency(context.Background(), ids)

	require.Error(t, err)
	assert.ErrorIs(t, err, seats.ErrSeatNotFound)
	assert.Nil(t, result)
}

func TestReserve_AbortsWhenSeatsTaken(t *testing.T) {
	f := newServiceFixture()
	projectionID := uuid.New()
	userID := uuid.New()
	seat1 := uuid.New()
	seat2 := uuid.New()
	f.reserveDirectly(seat1, projectionID, uuid.New())
	before := len(f.ledger.reservations)

	created, err := f.service.Reserve(context.Background(), projectionID, userID, []uuid.UUID{seat1, seat2})

	require.Error(t, err)
	var seatsTaken *SeatsTakenError
	require.ErrorAs(t, err, &seatsTaken)
	assert.Equal(t, "Some of seats are already reserved", seatsTaken.Message)
	assert.Equal(t, []uuid.UUID{seat1}, seatsTaken.SeatsTakenIDs)
	assert.Nil(t, created)
	assert.Len(t, f.ledger.reservations, before)
	assert.Zero(t, f.loyalty.calls)
	assert.Empty(t, f.producer.published)
}

func TestReserve_AbortsWhenPaymentDeclined(t *testing.T) {
	f := newServiceFixture()
	f.payment.result = payments.Result{IsSuccess: false, Message: "Insufficient funds"}

	created, err := f.service.Reserve(context.Background(), uuid.New(), uuid.New(), []uuid.UUID{uuid.New(), uuid.New()})

	require.Error(t, err)
	var paymentErr *PaymentError
	require.ErrorAs(t, err, &paymentErr)
	// The collaborator's message is surfaced verbatim.
	assert.Equal(t, "Insufficient funds", paymentErr.Message)
	assert.Nil(t, created)
	assert.Empty(t, f.ledger.reservations)
	assert.Zero(t, f.loyalty.calls)
}

func TestReserve_AbortsWhenLoyaltyUnavailable(t *testing.T) {
	f := newServiceFixture()
	f.loyalty.err = errors.New("loyalty service timeout")

	created, err := f.service.Reserve(context.Background(), uuid.New(), uuid.New(), []uuid.UUID{uuid.New()})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBonusUnavailable)
	assert.Nil(t, created)
	assert.Empty(t, f.ledger.reservations)
}

func TestReserve_CommitsAllSeats(t *testing.T) {
	f := newServiceFixture()
	projectionID := uuid.New()
	userID := uuid.New()
	seatIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	created, err := f.service.Reserve(context.Background(), projectionID, userID, seatIDs)

	require.NoError(t, err)
	require.Len(t, created, 3)
	for i, reservation := range created {
		assert.Equal(t, seatIDs[i], reservation.SeatID)
		assert.Equal(t, projectionID, reservation.ProjectionID)
		assert.Equal(t, userID, reservation.UserID)
	}
	assert.Len(t, f.ledger.reservations, 3)
	assert.Equal(t, 1, f.loyalty.calls)
	assert.Equal(t, 3, f.loyalty.lastCount)

	require.Len(t, f.producer.published, 1)
	notification := f.producer.published[0]
	assert.Equal(t, notifications.NotificationTypeReservationConfirmed, notification.Type)
	assert.Equal(t, userID, notification.RecipientID)
	assert.Equal(t, projectionID, notification.ProjectionID)
}

func TestReserve_StorageErrorLeavesEarlierInserts(t *testing.T) {
	f := newServiceFixture()
	f.ledger.failInsertAfter = 1

	created, err := f.service.Reserve(context.Background(), uuid.New(), uuid.New(), []uuid.UUID{uuid.New(), uuid.New()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert reservation")
	assert.Nil(t, created)
	// No compensation: the insert that succeeded before the failure stays.
	assert.Len(t, f.ledger.reservations, 1)
}
