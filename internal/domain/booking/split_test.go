//go:build unit

package booking_test

import (
	"testing"

	"teetime-exchange/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAmount(t *testing.T) {
	testCases := []struct {
		name   string
		total  int64
		counts []int
		want   []int64
	}{
		{name: "single booking gets everything", total: 25000, counts: []int{2}, want: []int64{25000}},
		{name: "even split", total: 40000, counts: []int{4, 4}, want: []int64{20000, 20000}},
		{name: "last split takes the remainder", total: 10001, counts: []int{4, 4, 2}, want: []int64{4000, 4000, 2001}},
		{name: "per player rounds half up", total: 1004, counts: []int{3, 3, 2}, want: []int64{378, 378, 248}},
		{name: "zero total", total: 0, counts: []int{4, 1}, want: []int64{0, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := booking.SplitAmount(tc.total, tc.counts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("parts always sum to the total", func(t *testing.T) {
		distributions := [][]int{{1}, {4, 4, 4, 1}, {3, 3, 3}, {2, 1}, {4, 3, 2, 1}, {1, 1, 1, 1, 1, 1, 1}}
		for total := int64(0); total < 5000; total += 37 {
			for _, counts := range distributions {
				parts, err := booking.SplitAmount(total, counts)
				require.NoError(t, err)
				var sum int64
				for _, p := range parts {
					sum += p
				}
				assert.Equal(t, total, sum, "total=%d counts=%v", total, counts)
			}
		}
	})

	t.Run("rejects empty or non-positive counts", func(t *testing.T) {
		_, err := booking.SplitAmount(100, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidSplit)
		_, err = booking.SplitAmount(100, []int{2, 0})
		assert.ErrorIs(t, err, booking.ErrInvalidSplit)
	})

	t.Run("rejects a split that leaves the last part negative", func(t *testing.T) {
		parts, err := booking.SplitAmount(14, []int{4, 4, 1})
		assert.ErrorIs(t, err, booking.ErrInvalidSplit)
		assert.Nil(t, parts)
	})
}

func TestGroupSplits(t *testing.T) {
	assert.Equal(t, []int{4, 4, 2}, booking.GroupSplits(10, 4))
	assert.Equal(t, []int{3}, booking.GroupSplits(3, 4))
	assert.Nil(t, booking.GroupSplits(0, 4))
}
