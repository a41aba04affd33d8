package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type AgentVisibility string

const (
	AGENT_VISIBILITY_PRIVATE      AgentVisibility = "private"
	AGENT_VISIBILITY_ORGANIZATION AgentVisibility = "organization"
	AGENT_VISIBILITY_PUBLIC       AgentVisibility = "public"
)

func (v AgentVisibility) Valid() bool {
	switch v {
	case AGENT_VISIBILITY_PRIVATE, AGENT_VISIBILITY_ORGANIZATION, AGENT_VISIBILITY_PUBLIC:
		return true
	}
	return false
}

// Agent 一个可复用的 AI 角色配置：提示词模板 + 系统指令 + 可见性 + 附件
type Agent struct {
	ID                 string          `json:"id" db:"id"`
	Name               string          `json:"name" db:"name"`
	Category           string          `json:"category" db:"category"`
	Description        string          `json:"description" db:"description"`
	PromptTemplate     string          `json:"prompt_template" db:"prompt_template"`
	SystemInstructions string          `json:"system_instructions" db:"system_instructions"`
	Visibility         AgentVisibility `json:"visibility" db:"visibility"`
	CreatorID          string          `json:"creator_id" db:"creator_id"`
	OrganizationID     string          `json:"organization_id" db:"organization_id"`
	FileIDs            StringList      `json:"file_ids" db:"file_ids"`
	UsageCount         int64           `json:"usage_count" db:"usage_count"`
	IsActive           bool            `json:"is_active" db:"is_active"`
	CreatedAt          int64           `json:"created_at" db:"created_at"`
	UpdatedAt          int64           `json:"updated_at" db:"updated_at"`
}

// StringList json 编码存储的字符串数组字段
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (s *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

type UpdateAgentArgs struct {
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	Description        string          `json:"description"`
	PromptTemplate     string          `json:"prompt_template"`
	SystemInstructions string          `json:"system_instructions"`
	Visibility         AgentVisibility `json:"visibility"`
	OrganizationID     string          `json:"organization_id"`
	FileIDs            StringList      `json:"file_ids"`
}

type ListAgentOptions struct {
	Category        string
	CreatorID       string
	OrganizationIDs []string
	// VisibleToUser 过滤出该用户可见的 agent：public + 自己创建 + 所属组织
	VisibleToUser string
	ActiveOnly    bool
}
