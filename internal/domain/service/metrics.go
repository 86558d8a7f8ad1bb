package service

// DirectoryMetrics records directory business metrics.
type DirectoryMetrics interface {
	// ListingViewed counts a profile render.
	ListingViewed(city, category string)

	// ListingTransition counts an activation state change made by reconciliation.
	ListingTransition(transition string)

	// ReconciliationFailure counts a listing that could not be reconciled.
	ReconciliationFailure(job string)

	// BulkAction counts listings affected by an admin bulk action.
	BulkAction(action string, affected int)
}
