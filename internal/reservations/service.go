package reservations

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"cinely/internal/loyalty"
	"cinely/internal/notifications"
	"cinely/internal/payments"
	"cinely/internal/seats"
	"cinely/pkg/logger"
)

// Service decides whether a requested set of seats can be reserved and
// commits the reservation when it can. Availability is a point-in-time
// check against the ledger, not a lock; see Reserve for how the race with
// concurrent commits is handled.
type Service interface {
	GetAllReservations(ctx context.Context) ([]Reservation, error)
	GetReservationsByProjection(ctx context.Context, projectionID uuid.UUID) ([]Reservation, error)
	GetReservationsByUser(ctx context.Context, userID uuid.UUID) ([]Reservation, error)
	CheckAvailability(ctx context.Context, seatIDs []uuid.UUID, projectionID *uuid.UUID) (*AvailabilityResult, error)
	CheckAdjacency(ctx context.Context, seatIDs []uuid.UUID) (*AdjacencyResult, error)
	Reserve(ctx context.Context, projectionID, userID uuid.UUID, seatIDs []uuid.UUID) ([]Reservation, error)
}

type service struct {
	repo     Repository
	seats    seats.Service
	payment  payments.Client
	loyalty  loyalty.Service
	producer notifications.Producer
	log      *logger.Logger
}

func NewService(repo Repository, seatSvc seats.Service, payment payments.Client, loyaltySvc loyalty.Service, producer notifications.Producer) Service {
	return &service{
		repo:     repo,
		seats:    seatSvc,
		payment:  payment,
		loyalty:  loyaltySvc,
		producer: producer,
		log:      logger.GetDefault(),
	}
}

func (s *service) GetAllReservations(ctx context.Context) ([]Reservation, error) {
	reservations, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (s *service) GetReservationsByProjection(ctx context.Context, projectionID uuid.UUID) ([]Reservation, error) {
	reservations, err := s.repo.GetByProjectionID(ctx, projectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for projection: %w", err)
	}
	return reservations, nil
}

func (s *service) GetReservationsByUser(ctx context.Context, userID uuid.UUID) ([]Reservation, error) {
	reservations, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for user: %w", err)
	}
	return reservations, nil
}

// CheckAvailability reports which of the requested seats already carry a
// reservation, scoped to one projection when projectionID is set. The
// result reflects the ledger at the moment of the query.
func (s *service) CheckAvailability(ctx context.Context, seatIDs []uuid.UUID, projectionID *uuid.UUID) (*AvailabilityResult, error) {
	var ledger []Reservation
	var err error
	if projectionID != nil {
		ledger, err = s.repo.GetByProjectionID(ctx, *projectionID)
	} else {
		ledger, err = s.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read reservation ledger: %w", err)
	}

	if len(ledger) == 0 {
		return &AvailabilityResult{
			AreFree:     true,
			InfoMessage: MsgNoReservations,
		}, nil
	}

	reserved := make(map[uuid.UUID]bool, len(ledger))
	for i := range ledger {
		reserved[ledger[i].SeatID] = true
	}

	var taken []uuid.UUID
	for _, id := range seatIDs {
		if reserved[id] {
			taken = append(taken, id)
		}
	}

	if len(taken) == 0 {
		return &AvailabilityResult{
			AreFree:     true,
			InfoMessage: MsgSeatsFree,
		}, nil
	}

	return &AvailabilityResult{
		AreFree:      false,
		InfoMessage:  MsgSeatsTaken,
		TakenSeatIDs: taken,
	}, nil
}

// CheckAdjacency verifies that the requested seats form one contiguous run
// within a single row. An empty input yields a nil result, which callers
// must treat as an error rather than a pass.
func (s *service) CheckAdjacency(ctx context.Context, seatIDs []uuid.UUID) (*AdjacencyResult, error) {
	if len(seatIDs) == 0 {
		return nil, nil
	}

	if len(seatIDs) == 1 {
		return &AdjacencyResult{
			Succeeded:   true,
			InfoMessage: MsgSingleSeat,
		}, nil
	}

	requested, err := s.seats.GetSeatsByIDs(ctx, seatIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve seats: %w", err)
	}

	row := requested[0].Row
	for i := range requested {
		if requested[i].Row != row {
			return &AdjacencyResult{
				Succeeded:   false,
				InfoMessage: MsgDifferentRows,
			}, nil
		}
	}

	numbers := make([]int, len(requested))
	for i := range requested {
		numbers[i] = requested[i].Number
	}
	sort.Ints(numbers)

	for i := 1; i < len(numbers); i++ {
		if numbers[i] != numbers[i-1]+1 {
			return &AdjacencyResult{
				Succeeded:   false,
				InfoMessage: MsgRowGap,
			}, nil
		}
	}

	return &AdjacencyResult{Succeeded: true}, nil
}

// Reserve runs the commit flow: availability check, payment, loyalty
// bonus, then one insert per seat. There is no compensation: a storage
// error mid-loop leaves the earlier inserts in place and surfaces the
// error. The unique (seat_id, projection_id) constraint turns a lost race
// between the check and the inserts into a storage error here rather than
// a silent double booking.
func (s *service) Reserve(ctx context.Context, projectionID, userID uuid.UUID, seatIDs []uuid.UUID) ([]Reservation, error) {
	saga := NewSaga()

	availability, err := s.CheckAvailability(ctx, seatIDs, &projectionID)
	if err != nil {
		saga.Abort()
		return nil, err
	}
	if !availability.AreFree {
		saga.Abort()
		s.log.LogReservationRejected(ctx, projectionID.String(), userID.String(), availability.InfoMessage)
		return nil, &SeatsTakenError{
			Message:       availability.InfoMessage,
			SeatsTakenIDs: availability.TakenSeatIDs,
		}
	}

	if err := saga.Advance(); err != nil {
		return nil, err
	}

	payment := s.payment.MakePayment()
	if !payment.IsSuccess {
		saga.Abort()
		s.log.LogReservationRejected(ctx, projectionID.String(), userID.String(), payment.Message)
		return nil, &PaymentError{Message: payment.Message}
	}

	user, err := s.loyalty.IncreaseBonus(ctx, userID, len(seatIDs))
	if err != nil {
		saga.Abort()
		return nil, fmt.Errorf("%w: %v", ErrBonusUnavailable, err)
	}
	if user == nil {
		saga.Abort()
		return nil, ErrBonusUnavailable
	}

	if err := saga.Advance(); err != nil {
		return nil, err
	}

	created := make([]Reservation, 0, len(seatIDs))
	for _, seatID := range seatIDs {
		reservation := Reservation{
			ID:           uuid.New(),
			SeatID:       seatID,
			ProjectionID: projectionID,
			UserID:       userID,
		}
		if err := s.repo.Insert(ctx, &reservation); err != nil {
			saga.Abort()
			return nil, fmt.Errorf("failed to insert reservation: %w", err)
		}
		created = append(created, reservation)
	}

	if err := saga.Advance(); err != nil {
		return nil, err
	}

	s.log.LogReservationCreated(ctx, projectionID.String(), userID.String(), len(created))

	notification := notifications.NewReservationConfirmed(userID, user.Email, projectionID, seatIDs)
	if err := s.producer.PublishReservationNotification(ctx, notification); err != nil {
		log.Printf("Warning: failed to publish reservation notification: %v", err)
	}

	return created, nil
}
