package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestType(t *testing.T) {
	valid := []string{
		"gas_leak", "billing_inquiry", "new_service", "service_change",
		"meter_reading", "payment_arrangement", "property_damage",
		"emergency", "other",
	}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			rt, err := NewRequestType(s)
			require.NoError(t, err)
			assert.Equal(t, s, rt.String())
		})
	}

	_, err := NewRequestType("plumbing")
	assert.Error(t, err)

	_, err = NewRequestType("")
	assert.Error(t, err)
}

func TestRequestType_IsUrgent(t *testing.T) {
	assert.True(t, TypeGasLeak.IsUrgent())
	assert.True(t, TypeEmergency.IsUrgent())
	assert.False(t, TypeBillingInquiry.IsUrgent())
}

func TestNewStatus(t *testing.T) {
	for _, s := range []string{"pending", "in_progress", "on_hold", "resolved", "closed"} {
		t.Run(s, func(t *testing.T) {
			status, err := NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		})
	}

	_, err := NewStatus("open")
	assert.Error(t, err)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusResolved.IsTerminal())
	assert.True(t, StatusClosed.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.False(t, StatusOnHold.IsTerminal())
}

func TestNewPriority(t *testing.T) {
	for _, s := range []string{"low", "medium", "high"} {
		p, err := NewPriority(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}

	_, err := NewPriority("urgent")
	assert.Error(t, err)
}
