package dto

import (
	"time"

	"github.com/google/uuid"
)

type SectionCounts struct {
	Skills          int64 `json:"skills"`
	Educations      int64 `json:"educations"`
	WorkExperiences int64 `json:"workExperiences"`
	Projects        int64 `json:"projects"`
	Certifications  int64 `json:"certifications"`
	Reviews         int64 `json:"reviews"`
	SocialLinks     int64 `json:"socialLinks"`
	Activities      int64 `json:"activities"`
	ProblemSolving  int64 `json:"problemSolving"`
}

type BlogStats struct {
	Total      int64 `json:"total"`
	Published  int64 `json:"published"`
	Drafts     int64 `json:"drafts"`
	TotalViews int64 `json:"totalViews"`
}

type MessageStats struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
}

type TopPost struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	ViewCount   int64      `json:"viewCount"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

type DashboardResponse struct {
	Sections SectionCounts `json:"sections"`
	Blog     BlogStats     `json:"blog"`
	Messages MessageStats  `json:"messages"`
	TopPosts []TopPost     `json:"topPosts"`
}

type SiteStatsResponse struct {
	TotalUsers       int64 `json:"totalUsers"`
	PublicPortfolios int64 `json:"publicPortfolios"`
	PublishedPosts   int64 `json:"publishedPosts"`
	ContactMessages  int64 `json:"contactMessages"`
}
