package domain

// Stats holds dashboard totals. Event and join counts may be estimated;
// TotalUsers is the cardinality of the distinct-email union across event
// creators and join participants.
type Stats struct {
	TotalEvents int64 `json:"totalEvents"`
	TotalJoins  int64 `json:"totalJoins"`
	TotalUsers  int64 `json:"totalUsers"`
}
