package usecase

// Page is one slice of a filtered listing. Total counts every row matching
// the filters, ignoring Limit and Offset.
type Page[T any] struct {
	Items  []T
	Total  int
	Limit  int
	Offset int
}
