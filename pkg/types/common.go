package types

const (
	NO_PAGING     uint64 = 0
	NO_PAGINATION uint64 = 0

	DEFAULT_APPID = "megaspace"

	LANGUAGE_EN_KEY = "en"
	LANGUAGE_CN_KEY = "zh-CN"
)

// UserTokenMeta 身份服务换取到的用户身份缓存结构
type UserTokenMeta struct {
	Appid    string `json:"appid"`
	UserID   string `json:"user_id"`
	ExpireAt int64  `json:"expire_at"`
}
