package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		from    Status
		approve bool
		want    Status
		wantErr error
	}{
		{StatusWaiting, true, StatusApproved, nil},
		{StatusWaiting, false, StatusRejected, nil},
		{StatusApproved, true, "", ErrAlreadyApproved},
		{StatusApproved, false, StatusRejected, nil},
		{StatusRejected, true, StatusApproved, nil},
		{StatusRejected, false, StatusRejected, nil},
	}

	for _, tt := range tests {
		got, err := nextStatus(tt.from, tt.approve)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "%s approve=%v", tt.from, tt.approve)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s approve=%v", tt.from, tt.approve)
	}
}
