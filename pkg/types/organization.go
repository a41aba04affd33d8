package types

type Organization struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

// OrganizationMember 用户与组织的从属关系，本服务只读
type OrganizationMember struct {
	UserID         string `json:"user_id" db:"user_id"`
	OrganizationID string `json:"organization_id" db:"organization_id"`
	Role           string `json:"role" db:"role"`
	CreatedAt      int64  `json:"created_at" db:"created_at"`
}

const (
	ORG_MEMBER_ROLE_ADMIN  = "admin"
	ORG_MEMBER_ROLE_MEMBER = "member"
)
