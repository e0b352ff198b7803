package scenario

type PageType string

const (
	PageErrorResolution PageType = "error_resolution"
	PageDashboard       PageType = "dashboard"
	PageTool            PageType = "tool"
	PageNetworkTool     PageType = "network_tool"
	PageDeveloperTool   PageType = "developer_tool"
)

// Query is one seeded scenario page. Slug is the stable external key.
type Query struct {
	ID                 uint64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug               string   `gorm:"type:varchar(191);uniqueIndex;not null" json:"slug"`
	RawQuery           string   `gorm:"type:text;not null" json:"rawQuery"`
	Intent             string   `gorm:"type:text;not null" json:"intent"`
	PageType           PageType `gorm:"type:varchar(32);not null" json:"pageType"`
	RecommendedActions []string `gorm:"type:text;serializer:json;not null" json:"recommendedActions"`
	ProblemContext     string   `gorm:"type:text;not null" json:"problemContext"`
	MetaTitle          string   `gorm:"type:text;not null" json:"metaTitle"`
	MetaDescription    string   `gorm:"type:text;not null" json:"metaDescription"`
}

func (Query) TableName() string { return "queries" }
