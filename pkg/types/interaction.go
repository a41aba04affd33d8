package types

type InteractionRole string

const (
	INTERACTION_ROLE_USER      InteractionRole = "user"
	INTERACTION_ROLE_ASSISTANT InteractionRole = "assistant"
)

// Interaction 会话中的一条持久化消息，按 session_id 分组，只增不改
type Interaction struct {
	ID             string          `json:"id" db:"id"`
	UserID         string          `json:"user_id" db:"user_id"`
	AgentID        string          `json:"agent_id" db:"agent_id"`
	OrganizationID string          `json:"organization_id" db:"organization_id"`
	SessionID      string          `json:"session_id" db:"session_id"`
	Role           InteractionRole `json:"role" db:"role"`
	Content        string          `json:"content" db:"content"`
	ResponseTime   int64           `json:"response_time" db:"response_time"`
	CreatedAt      int64           `json:"created_at" db:"created_at"`
}
