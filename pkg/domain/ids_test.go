package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "realestate/pkg/domain-errors"
)

// TestParseID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs"
func TestParseID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParsePropertyID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParsePropertyID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParsePropertyID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := ParsePropertyID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, PropertyID(validUUID), id)
		assert.Equal(t, validUUID.String(), id.String())
	})
}

func TestIDFrom_WrapsExistingUUID(t *testing.T) {
	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := AgencyIDFrom(uuid.Nil)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("wraps value and compares by value", func(t *testing.T) {
		raw := uuid.New()
		a, err := DealIDFrom(raw)
		require.NoError(t, err)
		b, err := DealIDFrom(raw)
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.False(t, a.IsNil())
	})

	t.Run("zero value is nil", func(t *testing.T) {
		var id BookingID
		assert.True(t, id.IsNil())
	})
}

func TestNewIDs_AreRandomAndNonNil(t *testing.T) {
	a, b := NewClientID(), NewClientID()
	assert.NotEqual(t, a, b)
	assert.False(t, a.IsNil())
	assert.False(t, NewCompletedDealID().IsNil())
}

// TestTypeDistinction verifies the compiler enforces type safety.
// This is a compile-time check - if this compiles, the invariant holds.
func TestTypeDistinction(t *testing.T) {
	propertyID := NewPropertyID()
	agencyID := NewAgencyID()

	// These would fail to compile if types were interchangeable:
	// var _ PropertyID = agencyID   // compile error
	// var _ AgencyID = propertyID   // compile error

	assert.NotEqual(t, uuid.UUID(propertyID), uuid.UUID(agencyID))
}

func TestParseID_BoundaryInputs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE properties;--", true},
		{"Path traversal", "../../../etc/passwd", true},
		{"Null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Unicode zero-width space", "550e8400\u200B-e29b-41d4-a716-446655440000", true},

		{"Empty string", "", true},
		{"Nil UUID", uuid.Nil.String(), true},
		{"Whitespace only", "   ", true},
		{"Uppercase valid UUID", "550E8400-E29B-41D4-A716-446655440000", false},

		{"Valid UUID lowercase", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClientID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestAllIDTypes_ConsistentBehavior ensures all ID types have identical parsing behavior.
func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	validUUID := uuid.New().String()
	invalidInputs := []string{"", "invalid", uuid.Nil.String()}

	parseAll := func(input string) []error {
		_, errAgency := ParseAgencyID(input)
		_, errProperty := ParsePropertyID(input)
		_, errClient := ParseClientID(input)
		_, errBooking := ParseBookingID(input)
		_, errDeal := ParseDealID(input)
		_, errCompleted := ParseCompletedDealID(input)
		return []error{errAgency, errProperty, errClient, errBooking, errDeal, errCompleted}
	}

	t.Run("all accept valid UUID", func(t *testing.T) {
		for _, err := range parseAll(validUUID) {
			require.NoError(t, err)
		}
	})

	for _, input := range invalidInputs {
		t.Run("all reject: "+input, func(t *testing.T) {
			for _, err := range parseAll(input) {
				require.Error(t, err)
			}
		})
	}
}
