package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL             = "error.internal"
	ERROR_NOT_FOUND            = "error.notfound"
	ERROR_INVALIDARGUMENT      = "error.invalidargument"
	ERROR_PERMISSION_DENIED    = "error.permission.denied"
	ERROR_UNAUTHORIZED         = "error.unauthorized"
	ERROR_FORBIDDEN            = "error.forbidden"
	ERROR_EXIST                = "error.exist"
	ERROR_UPSTREAM_UNAVAILABLE = "error.upstream.unavailable"

	ERROR_INVALID_TOKEN         = "error.invalid.token"
	ERROR_AGENT_NOT_FOUND       = "error.agent.notfound"
	ERROR_AGENT_PRIVATE         = "error.agent.private"
	ERROR_AGENT_NOT_ORG_MEMBER  = "error.agent.not.org.member"
	ERROR_AGENT_ORPHAN_ORG      = "error.agent.orphan.org"
	ERROR_PUBLIC_TOOL_NOT_FOUND = "error.public.tool.notfound"
)
