package models

type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}
