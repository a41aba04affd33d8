package types

type PublicTool struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Category    string `json:"category" db:"category"`
	URL         string `json:"url" db:"url"`
	SortOrder   int64  `json:"sort_order" db:"sort_order"`
	UsageCount  int64  `json:"usage_count" db:"usage_count"`
	IsActive    bool   `json:"is_active" db:"is_active"`
	CreatedAt   int64  `json:"created_at" db:"created_at"`
}

type ListPublicToolOptions struct {
	Category   string
	ActiveOnly bool
}
