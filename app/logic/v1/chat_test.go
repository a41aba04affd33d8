package v1

import (
	"context"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seriousplay/MegaSpace/app/core"
	"github.com/seriousplay/MegaSpace/pkg/ai"
	"github.com/seriousplay/MegaSpace/pkg/ai/simulate"
	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/security"
	"github.com/seriousplay/MegaSpace/pkg/testutils"
	"github.com/seriousplay/MegaSpace/pkg/types"
	"github.com/seriousplay/MegaSpace/pkg/utils"
)

func TestSortFilesByAttachment(t *testing.T) {
	// alpha 先上传，但挂载顺序是 beta 在前
	alpha := types.FileUpload{ID: "f-alpha", Filename: "alpha.txt", CreatedAt: 100}
	beta := types.FileUpload{ID: "f-beta", Filename: "beta.txt", CreatedAt: 200}

	got := sortFilesByAttachment(types.StringList{"f-beta", "f-alpha"}, []types.FileUpload{alpha, beta})
	require.Len(t, got, 2)
	assert.Equal(t, "f-beta", got[0].ID)
	assert.Equal(t, "f-alpha", got[1].ID)

	// 已删除的文件跳过，不影响其余顺序
	got = sortFilesByAttachment(types.StringList{"f-gone", "f-beta", "f-alpha"}, []types.FileUpload{alpha, beta})
	require.Len(t, got, 2)
	assert.Equal(t, "f-beta", got[0].ID)
	assert.Equal(t, "f-alpha", got[1].ID)

	assert.Empty(t, sortFilesByAttachment(nil, []types.FileUpload{alpha}))
}

// captureDriver 记录收到的 prompt，用于断言上下文组装
type captureDriver struct {
	prompts []string
	reply   string
}

func (d *captureDriver) Name() string { return "capture" }

func (d *captureDriver) Generate(ctx context.Context, prompt string) (*ai.GenerateResult, error) {
	d.prompts = append(d.prompts, prompt)
	return &ai.GenerateResult{Received: time.Now(), Model: "capture", Content: d.reply}, nil
}

var (
	testCoreOnce sync.Once
	testCore     *core.Core
)

func setupTestCore(t *testing.T) *core.Core {
	testutils.LoadEnv()
	dsn := os.Getenv("MEGASPACE_POSTGRESQL_DSN")
	if dsn == "" {
		t.Skip("MEGASPACE_POSTGRESQL_DSN not set")
	}

	testCoreOnce.Do(func() {
		utils.SetupIDWorker(1)
		cfg := core.CoreConfig{}
		cfg.Postgres.DSN = dsn
		cfg.AI.Driver = simulate.NAME
		testCore = core.MustSetupCore(cfg)
	})
	return testCore
}

func ctxWithUser(userID string) context.Context {
	claims := security.NewTokenClaims(types.DEFAULT_APPID, userID, "", time.Now().Add(time.Hour).Unix())
	return context.WithValue(context.Background(), TOKEN_CONTEXT_KEY, claims)
}

func TestChatPipeline(t *testing.T) {
	app := setupTestCore(t)
	ctx := context.Background()

	driver := &captureDriver{reply: "first answer"}
	app.Srv().ReloadAI(driver)

	agent := types.Agent{
		ID:                 "chat-test-agent-" + utils.GenRandomID(),
		Name:               "essay coach",
		SystemInstructions: "You coach students on essay writing.",
		Visibility:         types.AGENT_VISIBILITY_PRIVATE,
		CreatorID:          "chat-test-user",
		IsActive:           true,
	}
	require.NoError(t, app.Store().AgentStore().Create(ctx, agent))
	defer app.Store().AgentStore().Delete(ctx, agent.ID)

	logic := NewChatLogic(ctxWithUser("chat-test-user"), app)

	// 首轮：生成新会话，落两条记录，计数 +1
	res1, err := logic.SendMessage(agent.ID, "hello", "")
	require.NoError(t, err)
	assert.NotEmpty(t, res1.SessionID)
	assert.Equal(t, "first answer", res1.Response)
	assert.Equal(t, agent.Name, res1.AgentName)

	total, err := app.Store().InteractionStore().TotalSessionInteractions(ctx, res1.SessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	saved, err := app.Store().AgentStore().GetAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.UsageCount)

	// 次轮：同会话的 prompt 必须带上首轮问答
	driver.reply = "second answer"
	res2, err := logic.SendMessage(agent.ID, "go on", res1.SessionID)
	require.NoError(t, err)
	assert.Equal(t, res1.SessionID, res2.SessionID)

	require.Len(t, driver.prompts, 2)
	assert.True(t, strings.Contains(driver.prompts[1], "user: hello"))
	assert.True(t, strings.Contains(driver.prompts[1], "assistant: first answer"))

	total, err = app.Store().InteractionStore().TotalSessionInteractions(ctx, res1.SessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	// 上游失败：请求整体失败，数据库无任何新写入
	app.Srv().ReloadAI(simulate.NewWithError(assert.AnError))
	_, err = logic.SendMessage(agent.ID, "again", res1.SessionID)
	require.Error(t, err)
	cerr, ok := err.(*errors.CustomizedError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, cerr.GetCode())

	total, err = app.Store().InteractionStore().TotalSessionInteractions(ctx, res1.SessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	saved, err = app.Store().AgentStore().GetAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.UsageCount)
}

func TestChatPipelineForbiddenWritesNothing(t *testing.T) {
	app := setupTestCore(t)
	ctx := context.Background()

	app.Srv().ReloadAI(simulate.NewWithResponse("should not happen"))

	agent := types.Agent{
		ID:         "chat-test-private-" + utils.GenRandomID(),
		Name:       "private helper",
		Visibility: types.AGENT_VISIBILITY_PRIVATE,
		CreatorID:  "chat-test-owner",
		IsActive:   true,
	}
	require.NoError(t, app.Store().AgentStore().Create(ctx, agent))
	defer app.Store().AgentStore().Delete(ctx, agent.ID)

	logic := NewChatLogic(ctxWithUser("chat-test-intruder"), app)

	sessionID := "chat-test-session-" + utils.GenRandomID()
	_, err := logic.SendMessage(agent.ID, "let me in", sessionID)
	require.Error(t, err)
	cerr, ok := err.(*errors.CustomizedError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, cerr.GetCode())

	total, err := app.Store().InteractionStore().TotalSessionInteractions(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	saved, err := app.Store().AgentStore().GetAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), saved.UsageCount)
}
