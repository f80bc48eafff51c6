package entities

// RankingDimension selects one of the discovery listing orders
type RankingDimension string

const (
	RankingAll      RankingDimension = "all"
	RankingRecent   RankingDimension = "recent"
	RankingPopular  RankingDimension = "popular"
	RankingFeatured RankingDimension = "featured"
)

// Valid reports whether the dimension is one of the four discovery views
func (d RankingDimension) Valid() bool {
	switch d {
	case RankingAll, RankingRecent, RankingPopular, RankingFeatured:
		return true
	}
	return false
}

// RankingPage is one paginated discovery listing
type RankingPage struct {
	Items      []ProfileSummary `json:"items"`
	TotalItems int64            `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
	PageNumber int              `json:"pageNumber"`
	PageSize   int              `json:"pageSize"`
}
