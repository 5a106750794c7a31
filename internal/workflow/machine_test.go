package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperpilot/invoicer/constants"
	"github.com/paperpilot/invoicer/internal/common"
)

func TestNext_LegalWalk(t *testing.T) {
	// pending -> processing -> processed -> approved -> paid
	s := Initial()
	require.Equal(t, constants.StatusPending, s)

	steps := []struct {
		event Event
		want  constants.InvoiceStatus
	}{
		{EventExtractionStarted, constants.StatusProcessing},
		{EventProcessingOK, constants.StatusProcessed},
		{EventApprove, constants.StatusApproved},
		{EventPaymentRecorded, constants.StatusPaid},
	}
	for _, step := range steps {
		next, err := Next(s, step.event)
		require.NoError(t, err)
		assert.Equal(t, step.want, next)
		assert.True(t, next.Valid())
		s = next
	}
	assert.True(t, s.IsTerminal())
}

func TestNext_IllegalJumps(t *testing.T) {
	cases := []struct {
		name  string
		from  constants.InvoiceStatus
		event Event
	}{
		{"pending to paid directly", constants.StatusPending, EventPaymentRecorded},
		{"pending approval", constants.StatusPending, EventApprove},
		{"paid is terminal", constants.StatusPaid, EventReset},
		{"duplicate is terminal", constants.StatusDuplicate, EventApprove},
		{"duplicate cannot reset", constants.StatusDuplicate, EventReset},
		{"processing cannot approve", constants.StatusProcessing, EventApprove},
		{"processed cannot restart extraction", constants.StatusProcessed, EventExtractionStarted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Next(tc.from, tc.event)
			require.Error(t, err)
			assert.Equal(t, tc.from, next, "state must be unchanged on illegal transition")
			assert.True(t, errors.Is(err, common.ErrIllegalTransition))

			var ite *IllegalTransitionError
			require.ErrorAs(t, err, &ite)
			assert.Equal(t, tc.from, ite.From)
			assert.Equal(t, tc.event, ite.Event)
		})
	}
}

func TestNext_FailureAndDuplicatePaths(t *testing.T) {
	next, err := Next(constants.StatusProcessing, EventProcessingFailed)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusRejected, next)

	next, err = Next(constants.StatusProcessed, EventExactDuplicate)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusDuplicate, next)

	next, err = Next(constants.StatusProcessed, EventReject)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusRejected, next)
}

func TestNext_ResetPreservesOnlyLegalSources(t *testing.T) {
	for _, from := range []constants.InvoiceStatus{
		constants.StatusProcessed, constants.StatusApproved, constants.StatusRejected,
	} {
		next, err := Next(from, EventReset)
		require.NoError(t, err, "reset from %s", from)
		assert.Equal(t, constants.StatusPending, next)
	}
}

func TestCanFire(t *testing.T) {
	assert.True(t, CanFire(constants.StatusPending, EventExtractionStarted))
	assert.False(t, CanFire(constants.StatusPaid, EventPaymentRecorded))
}

func TestAdvancing(t *testing.T) {
	assert.True(t, Advancing(EventProcessingOK))
	assert.True(t, Advancing(EventPaymentRecorded))
	assert.False(t, Advancing(EventReset))
}
