package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates pending registration", func(t *testing.T) {
		reg, err := New("Jane Doe", "JANE@example.com", "+263771234567", "1990-04-01", "12 Baker St, Harare", "starter")
		require.NoError(t, err)

		assert.Equal(t, StatusPending, reg.Status)
		assert.Equal(t, "jane@example.com", reg.Email)
		assert.False(t, reg.PaymentConfirmed)
		assert.False(t, reg.SubmittedDate.IsZero())
		assert.Empty(t, reg.Notes)
	})

	t.Run("requires every intake field", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(args *[6]string)
			message string
		}{
			{"full name", func(a *[6]string) { a[0] = " " }, "Full name is required"},
			{"email", func(a *[6]string) { a[1] = "nope" }, "Valid email is required"},
			{"phone", func(a *[6]string) { a[2] = "" }, "Phone number is required"},
			{"date of birth", func(a *[6]string) { a[3] = "" }, "Date of birth is required"},
			{"address", func(a *[6]string) { a[4] = "  " }, "Address is required"},
			{"kit choice", func(a *[6]string) { a[5] = "" }, "Kit choice is required"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				args := [6]string{"Jane", "jane@example.com", "+263771234567", "1990-04-01", "12 Baker St", "starter"}
				tc.mutate(&args)
				_, err := New(args[0], args[1], args[2], args[3], args[4], args[5])
				require.Error(t, err)
				assert.Equal(t, tc.message, err.Error())
			})
		}
	})

	t.Run("allows repeated emails", func(t *testing.T) {
		first, err := New("Jane", "jane@example.com", "+1", "1990-04-01", "addr", "starter")
		require.NoError(t, err)
		second, err := New("Jane", "jane@example.com", "+1", "1990-04-01", "addr", "starter")
		require.NoError(t, err)
		assert.Equal(t, first.Email, second.Email)
	})
}

func TestUpdateStatus(t *testing.T) {
	reg, err := New("Jane", "jane@example.com", "+1", "1990-04-01", "addr", "starter")
	require.NoError(t, err)

	t.Run("accepts every listed status", func(t *testing.T) {
		for _, status := range ValidStatuses {
			require.NoError(t, reg.UpdateStatus(string(status), false, ""))
			assert.Equal(t, status, reg.Status)
		}
	})

	t.Run("moves backwards freely", func(t *testing.T) {
		require.NoError(t, reg.UpdateStatus("completed", true, "done"))
		require.NoError(t, reg.UpdateStatus("pending", false, "reopened"))
		assert.Equal(t, StatusPending, reg.Status)
		assert.False(t, reg.PaymentConfirmed)
		assert.Equal(t, "reopened", reg.Notes)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		err := reg.UpdateStatus("archived", false, "")
		require.Error(t, err)
		assert.Equal(t, "Invalid status", err.Error())
	})
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("pending"))
	assert.True(t, IsValidStatus("cancelled"))
	assert.False(t, IsValidStatus("Pending"))
	assert.False(t, IsValidStatus(""))
}
