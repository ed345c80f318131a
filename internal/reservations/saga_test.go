package reservations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaga_HappyPath(t *testing.T) {
	saga := NewSaga()
	assert.Equal(t, StateChecking, saga.State())

	require.NoError(t, saga.Advance())
	assert.Equal(t, StatePaymentPending, saga.State())

	require.NoError(t, saga.Advance())
	assert.Equal(t, StateCommitting, saga.State())

	require.NoError(t, saga.Advance())
	assert.Equal(t, StateDone, saga.State())
	assert.True(t, saga.Terminated())
}

func TestSaga_AbortFromAnyNonTerminalState(t *testing.T) {
	for _, steps := range []int{0, 1, 2} {
		saga := NewSaga()
		for i := 0; i < steps; i++ {
			require.NoError(t, saga.Advance())
		}
		saga.Abort()
		assert.Equal(t, StateAborted, saga.State())
		assert.True(t, saga.Terminated())
	}
}

func TestSaga_CannotAdvancePastTerminalState(t *testing.T) {
	saga := NewSaga()
	saga.Abort()
	assert.Error(t, saga.Advance())

	done := NewSaga()
	require.NoError(t, done.Advance())
	require.NoError(t, done.Advance())
	require.NoError(t, done.Advance())
	assert.Error(t, done.Advance())
}

func TestSaga_AbortAfterDoneIsNoop(t *testing.T) {
	saga := NewSaga()
	require.NoError(t, saga.Advance())
	require.NoError(t, saga.Advance())
	require.NoError(t, saga.Advance())

	saga.Abort()
	assert.Equal(t, StateDone, saga.State())
}

func TestSagaState_String(t *testing.T) {
	assert.Equal(t, "CHECKING", StateChecking.String())
	assert.Equal(t, "PAYMENT_PENDING", StatePaymentPending.String())
	assert.Equal(t, "COMMITTING", StateCommitting.String())
	assert.Equal(t, "DONE", StateDone.String())
	assert.Equal(t, "ABORTED", StateAborted.String())
}
