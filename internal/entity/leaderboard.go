package entity

type LeaderboardStats struct {
	TotalPosts    int64   `json:"totalPosts"`
	TotalViews    int64   `json:"totalViews"`
	AverageRating float64 `json:"averageRating"`
	Score         float64 `json:"score"`
}

type LeaderboardEntry struct {
	Rank     int              `json:"rank"`
	UserID   string           `json:"userId"`
	Username string           `json:"username"`
	Avatar   string           `json:"avatar,omitempty"`
	Stats    LeaderboardStats `json:"stats"`
}

// PlatformStats summarizes the approved catalogue for dashboards.
type PlatformStats struct {
	TotalCreators int64            `json:"totalCreators"`
	TotalPosts    int64            `json:"totalPosts"`
	TotalViews    int64            `json:"totalViews"`
	AverageRating float64          `json:"averageRating"`
	PostsByType   map[string]int64 `json:"postsByType"`
}
