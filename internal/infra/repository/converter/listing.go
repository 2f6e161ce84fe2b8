package converter

import (
	"teetime-exchange/internal/domain/listing"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/pgconv"
)

func ListingFromRow(row sqlc.List) *listing.Listing {
	return listing.Reconstruct(listing.ReconstructParams{
		ID:           row.ID,
		UserID:       row.UserID,
		TeeTimeID:    row.TeeTimeID,
		CourseID:     row.CourseID,
		ListPrice:    row.ListPrice,
		Slots:        int(row.Slots),
		EndTime:      pgconv.TimeFromPgtype(row.EndTime),
		BookingIDs:   row.BookingIds,
		IsDeleted:    row.IsDeleted,
		CancelledBy:  pgconv.UUIDPtrFromPgtype(row.CancelledByUserID),
		SupersededBy: pgconv.UUIDPtrFromPgtype(row.SupersededBy),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	})
}

func ListingToCreateParams(l *listing.Listing) sqlc.CreateListingParams {
	return sqlc.CreateListingParams{
		ID:         l.ID(),
		UserID:     l.UserID(),
		TeeTimeID:  l.TeeTimeID(),
		CourseID:   l.CourseID(),
		ListPrice:  l.ListPrice(),
		Slots:      pgconv.IntToInt32(l.Slots()),
		EndTime:    pgconv.TimeToPgtype(l.EndTime()),
		BookingIds: l.BookingIDs(),
		CreatedAt:  pgconv.TimeToPgtype(l.CreatedAt()),
	}
}
