package types

const (
	RESOURCE_TYPE_AGENT       = "ai_agent"
	RESOURCE_TYPE_PUBLIC_TOOL = "public_tool"

	USAGE_ACTION_VIEW = "view"
	USAGE_ACTION_USE  = "use"
	USAGE_ACTION_CHAT = "chat"
)

// UsageLog 资源使用流水，尽力写入，失败不影响主流程
type UsageLog struct {
	ID             string `json:"id" db:"id"`
	UserID         string `json:"user_id" db:"user_id"`
	OrganizationID string `json:"organization_id" db:"organization_id"`
	ResourceType   string `json:"resource_type" db:"resource_type"`
	ResourceID     string `json:"resource_id" db:"resource_id"`
	Action         string `json:"action" db:"action"`
	CreatedAt      int64  `json:"created_at" db:"created_at"`
}
