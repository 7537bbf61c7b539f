package models

// SiteStats is the admin dashboard snapshot. Each count comes from its
// own query; the snapshot is not atomic across fields.
type SiteStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalProducts int64 `json:"totalProducts"`
	TotalReviews  int64 `json:"totalReviews"`
	Accepted      int64 `json:"accepted"`
	Pending       int64 `json:"pending"`
	Rejected      int64 `json:"rejected"`
	Reported      int64 `json:"reported"`
}

// OwnerStats is the product breakdown scoped to a single owner email.
type OwnerStats struct {
	TotalProducts int64 `json:"totalProducts"`
	Accepted      int64 `json:"accepted"`
	Pending       int64 `json:"pending"`
	Rejected      int64 `json:"rejected"`
	Reported      int64 `json:"reported"`
}
