package businessflow

// Rating bounds for collection items
const (
	RatingMin = 0
	RatingMax = 5
)

// NormalizeRating clamps a rating into [RatingMin, RatingMax].
// Out-of-range input is silently clamped, never rejected; applied on every
// item create and update before persistence.
func NormalizeRating(rating int) int {
	if rating < RatingMin {
		return RatingMin
	}
	if rating > RatingMax {
		return RatingMax
	}
	return rating
}
