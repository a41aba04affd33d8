package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAcceptLanguage(t *testing.T) {
	res := ParseAcceptLanguage("zh-CN,zh;q=0.9,en;q=0.8")
	assert.Equal(t, 3, len(res))
	assert.Equal(t, "zh-CN", res[0].Tag)
	assert.Equal(t, "en", res[2].Tag)

	res = ParseAcceptLanguage("en;q=0.5, zh-CN")
	assert.Equal(t, "zh-CN", res[0].Tag)
}

func TestRandomStr(t *testing.T) {
	s := RandomStr(32)
	assert.Equal(t, 32, len(s))
}

func TestGenSessionID(t *testing.T) {
	a, b := GenSessionID(), GenSessionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
