package booking

import "teetime-exchange/internal/pkg/errs"

var ErrInvalidSplit = errs.New("invalid player split")

// SplitAmount allocates totalCents across sub-bookings with the given player
// counts. Every sub-booking but the last gets round(total/players) per player;
// the last takes the remainder, so the parts always sum to totalCents. Small
// totals can round the leading parts above the total; that split is refused
// with ErrInvalidSplit rather than handing the last sub-booking a negative
// amount.
func SplitAmount(totalCents int64, playerCounts []int) ([]int64, error) {
	if len(playerCounts) == 0 {
		return nil, ErrInvalidSplit
	}
	var players int64
	for _, n := range playerCounts {
		if n <= 0 {
			return nil, ErrInvalidSplit
		}
		players += int64(n)
	}

	perPlayer := roundDiv(totalCents, players)
	parts := make([]int64, len(playerCounts))
	var allocated int64
	for i, n := range playerCounts[:len(playerCounts)-1] {
		parts[i] = perPlayer * int64(n)
		allocated += parts[i]
	}
	parts[len(parts)-1] = totalCents - allocated
	if totalCents >= 0 && parts[len(parts)-1] < 0 {
		return nil, ErrInvalidSplit
	}
	return parts, nil
}

// roundDiv divides rounding half away from zero.
func roundDiv(a, b int64) int64 {
	if a < 0 {
		return -roundDiv(-a, b)
	}
	return (2*a + b) / (2 * b)
}

// GroupSplits breaks a player count into sub-bookings of at most maxPerBooking.
func GroupSplits(players, maxPerBooking int) []int {
	if players <= 0 || maxPerBooking <= 0 {
		return nil
	}
	var out []int
	for players > 0 {
		n := min(players, maxPerBooking)
		out = append(out, n)
		players -= n
	}
	return out
}
