package teetime

import "github.com/google/uuid"

type DiffResult struct {
	Insert          []TeeTime
	Update          []TeeTime
	MarkUnavailable []uuid.UUID
}

func (d DiffResult) IsEmpty() bool {
	return len(d.Insert) == 0 && len(d.Update) == 0 && len(d.MarkUnavailable) == 0
}

// Diff compares one day of internal rows with the provider's rows, keyed by
// ProviderTeeTimeID. Updated rows keep the internal id and second-hand counts.
// newID is called for every inserted row.
func Diff(existing, upstream []TeeTime, newID func() uuid.UUID) DiffResult {
	var res DiffResult

	byProviderID := make(map[string]TeeTime, len(existing))
	for _, tt := range existing {
		byProviderID[tt.ProviderTeeTimeID] = tt
	}

	seen := make(map[string]struct{}, len(upstream))
	for _, up := range upstream {
		if _, dup := seen[up.ProviderTeeTimeID]; dup {
			continue
		}
		seen[up.ProviderTeeTimeID] = struct{}{}

		cur, ok := byProviderID[up.ProviderTeeTimeID]
		if !ok {
			up.ID = newID()
			res.Insert = append(res.Insert, up)
			continue
		}
		if cur.SameTrackedFields(up) {
			continue
		}
		up.ID = cur.ID
		up.AvailableSecondHandSpots = cur.AvailableSecondHandSpots
		res.Update = append(res.Update, up)
	}

	for _, cur := range existing {
		if _, ok := seen[cur.ProviderTeeTimeID]; ok {
			continue
		}
		if cur.AvailableFirstHandSpots > 0 {
			res.MarkUnavailable = append(res.MarkUnavailable, cur.ID)
		}
	}

	return res
}
