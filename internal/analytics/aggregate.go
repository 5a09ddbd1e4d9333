package analytics

import (
	"sort"
	"time"
)

// DeriveTotal returns the displayed total for a cost-bearing record: the
// override when present (an explicit zero override counts), otherwise the sum
// of the non-nil components. Inputs are assumed non-negative; entry
// validation is the caller's concern.
func DeriveTotal(override *float64, components ...*float64) float64 {
	if override != nil {
		return *override
	}
	var total float64
	for _, c := range components {
		if c != nil {
			total += *c
		}
	}
	return total
}

// StatusRecord is the aggregation input for growth bucketing: when a record
// entered the system and the status it currently holds. Bucketing is a
// snapshot over current statuses; there is no status-change ledger.
type StatusRecord struct {
	CreatedAt time.Time
	Status    string
}

// MonthBucket groups records created in one calendar month.
type MonthBucket struct {
	Month    string         `json:"month"` // YYYY-MM
	Count    int            `json:"count"`
	ByStatus map[string]int `json:"by_status"`
}

// BucketByMonth groups records by the YYYY-MM truncation of their creation
// time, ascending chronologically. Creation time is deliberate: growth
// reporting reflects when records entered the system, not when the shoot is
// scheduled.
func BucketByMonth(records []StatusRecord) []MonthBucket {
	byMonth := make(map[string]*MonthBucket)
	for _, r := range records {
		key := r.CreatedAt.Format("2006-01")
		b, ok := byMonth[key]
		if !ok {
			b = &MonthBucket{Month: key, ByStatus: make(map[string]int)}
			byMonth[key] = b
		}
		b.Count++
		b.ByStatus[r.Status]++
	}

	buckets := make([]MonthBucket, 0, len(byMonth))
	for _, b := range byMonth {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month < buckets[j].Month
	})
	return buckets
}

// LastMonths trims a chronologically ascending bucket slice to its most
// recent n entries, keeping ascending order.
func LastMonths(buckets []MonthBucket, n int) []MonthBucket {
	if n <= 0 || n >= len(buckets) {
		return buckets
	}
	return buckets[len(buckets)-n:]
}

// CategoryRecord is the aggregation input for per-category bucketing.
type CategoryRecord struct {
	Category string
	Status   string
}

// CategoryBucket groups records sharing one category key.
type CategoryBucket struct {
	Category string         `json:"category"`
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// BucketByCategory groups records by category key, sorted by total descending
// with category name as tiebreaker so output order is stable.
func BucketByCategory(records []CategoryRecord) []CategoryBucket {
	byCategory := make(map[string]*CategoryBucket)
	for _, r := range records {
		b, ok := byCategory[r.Category]
		if !ok {
			b = &CategoryBucket{Category: r.Category, ByStatus: make(map[string]int)}
			byCategory[r.Category] = b
		}
		b.Total++
		b.ByStatus[r.Status]++
	}

	buckets := make([]CategoryBucket, 0, len(byCategory))
	for _, b := range byCategory {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Total != buckets[j].Total {
			return buckets[i].Total > buckets[j].Total
		}
		return buckets[i].Category < buckets[j].Category
	})
	return buckets
}

// TopCategories keeps the k largest buckets and reports how many records fell
// into the remainder, for compact display.
func TopCategories(buckets []CategoryBucket, k int) ([]CategoryBucket, int) {
	if k <= 0 || k >= len(buckets) {
		return buckets, 0
	}
	overflow := 0
	for _, b := range buckets[k:] {
		overflow += b.Total
	}
	return buckets[:k], overflow
}
