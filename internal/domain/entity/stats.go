package entity

// ListingStats are the dashboard counters.
type ListingStats struct {
	Total           int64 `json:"total_listings"`
	Active          int64 `json:"active_listings"`
	Inactive        int64 `json:"inactive_listings"`
	Featured        int64 `json:"featured_listings"`
	PendingApproval int64 `json:"pending_approval"`
	RecentSignups   int64 `json:"recent_signups"`
}

// ValueCount is a grouped count, e.g. listings per city.
type ValueCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// CityCategory is a city/category pair with its visible listing counts.
type CityCategory struct {
	City     string
	Category string
	Listings int64
	Featured int64
}
