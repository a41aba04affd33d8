package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "megaspace_"

const (
	TABLE_AGENT               = TableName("agent")
	TABLE_INTERACTION         = TableName("interaction")
	TABLE_ORGANIZATION        = TableName("organization")
	TABLE_ORGANIZATION_MEMBER = TableName("organization_member")
	TABLE_FILE_UPLOAD         = TableName("file_upload")
	TABLE_PUBLIC_TOOL         = TableName("public_tool")
	TABLE_USAGE_LOG           = TableName("usage_log")
)
