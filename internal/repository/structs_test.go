package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlag(t *testing.T) {
	t.Parallel()

	truthy := []string{"true", "True", "TRUE", "1", "t", "yes", " yes ", "YES"}
	for _, v := range truthy {
		v := v
		assert.True(t, ParseFlag(&v), "expected %q to parse as true", v)
	}

	falsy := []string{"false", "0", "no", "", "  ", "enabled", "2"}
	for _, v := range falsy {
		v := v
		assert.False(t, ParseFlag(&v), "expected %q to parse as false", v)
	}

	assert.False(t, ParseFlag(nil))
}

func TestNotificationAdminVisible(t *testing.T) {
	t.Parallel()

	customerID := "cust-1"

	tests := []struct {
		name string
		n    Notification
		want bool
	}{
		{name: "plain admin record", n: Notification{}, want: true},
		{name: "customer-referenced record", n: Notification{CustomerID: &customerID}, want: false},
		{name: "private record", n: Notification{Private: true}, want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.n.AdminVisible())
		})
	}
}
