package add_shift

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ReservationEngine/internal/session"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
)

type brokenStore struct {
	*memory.Store
}

func (b brokenStore) SaveSchedules(ctx context.Context, shifts []domain.Shift) error {
	return errors.New("read-only filesystem")
}

func newUseCase(t *testing.T, gateway session.Gateway) (*UseCase, *session.Session) {
	t.Helper()
	s := session.New(gateway, logger.NewNop())
	require.NoError(t, s.Load(context.Background()))
	return NewUseCase(s, s, logger.NewNop()), s
}

func validRequest() *Request {
	return &Request{
		ProviderID: "dr-house",
		Date:       time.Date(2030, time.May, 10, 0, 0, 0, 0, time.UTC),
		StartTime:  "09:00 AM",
		EndTime:    "05:00 PM",
	}
}

func TestExecute_AddsShift(t *testing.T) {
	store := memory.NewStore(nil, nil)
	uc, s := newUseCase(t, store)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeAdded, resp.Outcome)
	assert.Equal(t, "Successfully added shift 05/10/2030 09:00 AM - 05:00 PM", resp.Message)
	require.Len(t, s.Shifts(), 1)

	stored, err := store.LoadSchedules(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Equal(resp.Shift))
}

func TestExecute_DuplicateIsIdempotent(t *testing.T) {
	store := memory.NewStore(nil, nil)
	uc, s := newUseCase(t, store)
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeDuplicate, resp.Outcome)
	assert.Equal(t, domain.MsgShiftAlreadyAdded, resp.Message)
	assert.Len(t, s.Shifts(), 1)

	shiftSaves, _ := store.SaveCounts()
	assert.Equal(t, 1, shiftSaves, "duplicate must not write")
}

func TestExecute_SameDayDifferentHoursIsNotDuplicate(t *testing.T) {
	uc, s := newUseCase(t, memory.NewStore(nil, nil))
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.EndTime = "06:00 PM"
	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, OutcomeAdded, resp.Outcome)
	assert.Len(t, s.Shifts(), 2)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newUseCase(t, memory.NewStore(nil, nil))

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "empty provider", mutate: func(r *Request) { r.ProviderID = " " }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "empty start", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "empty end", mutate: func(r *Request) { r.EndTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_StorageFailurePropagates(t *testing.T) {
	uc, s := newUseCase(t, brokenStore{memory.NewStore(nil, nil)})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, s.Shifts())
}
