package v1

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/seriousplay/MegaSpace/app/core"
	"github.com/seriousplay/MegaSpace/pkg/ai"
	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/i18n"
	"github.com/seriousplay/MegaSpace/pkg/safe"
	"github.com/seriousplay/MegaSpace/pkg/types"
	"github.com/seriousplay/MegaSpace/pkg/utils"
)

// SESSION_HISTORY_LIMIT 组装上下文时回看的历史条数
const SESSION_HISTORY_LIMIT = 10

type ChatLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewChatLogic(ctx context.Context, core *core.Core) *ChatLogic {
	return &ChatLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

type ChatResult struct {
	Response     string `json:"response"`
	SessionID    string `json:"sessionId"`
	AgentName    string `json:"agentName"`
	ResponseTime int64  `json:"responseTime"` // 毫秒
}

// SendMessage 聊天主流程：鉴权 -> 组装上下文 -> 请求补全 -> 尽力落库。
// 上游失败时整个请求失败且不产生任何写入。
func (l *ChatLogic) SendMessage(agentID, message, sessionID string) (*ChatResult, error) {
	if agentID == "" || strings.TrimSpace(message) == "" {
		return nil, errors.New("ChatLogic.SendMessage.args", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	user := l.GetUserInfo().User

	agent, err := l.core.Store().AgentStore().GetAgent(l.ctx, agentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("ChatLogic.SendMessage.GetAgent", i18n.ERROR_AGENT_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("ChatLogic.SendMessage.GetAgent", i18n.ERROR_INTERNAL, err)
	}
	if !agent.IsActive {
		return nil, errors.New("ChatLogic.SendMessage.inactive", i18n.ERROR_AGENT_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	if err := CheckAgentAccess(l.ctx, agent, user, l.isOrganizationMember); err != nil {
		return nil, err
	}

	// 新会话刚分配的 session 不会有历史，不用查
	var history []types.Interaction
	if sessionID == "" {
		sessionID = utils.GenSessionID()
	} else {
		history, err = l.core.Store().InteractionStore().ListSessionInteractions(l.ctx, sessionID, SESSION_HISTORY_LIMIT)
		if err != nil {
			return nil, errors.New("ChatLogic.SendMessage.ListSessionInteractions", i18n.ERROR_INTERNAL, err)
		}
	}

	var files []types.FileUpload
	if len(agent.FileIDs) > 0 {
		files, err = l.core.Store().FileUploadStore().ListFileUploads(l.ctx, agent.FileIDs)
		if err != nil {
			return nil, errors.New("ChatLogic.SendMessage.ListFileUploads", i18n.ERROR_INTERNAL, err)
		}
		files = sortFilesByAttachment(agent.FileIDs, files)
	}

	prompt := l.assemblePrompt(agent, files, history, message)

	driver := l.core.Srv().AI()
	timer := l.core.Metrics().CompletionTimer(driver.Name())
	start := time.Now()
	result, err := driver.Generate(l.ctx, prompt)
	timer.ObserveDuration()
	if err != nil {
		l.core.Metrics().CompletionErrorInc(driver.Name())
		return nil, errors.New("ChatLogic.SendMessage.Generate", i18n.ERROR_UPSTREAM_UNAVAILABLE, err).Code(http.StatusBadGateway)
	}
	responseTime := time.Since(start).Milliseconds()

	safe.Run(func() {
		l.recordInteraction(agent, sessionID, message, result.Message(), responseTime)
	})

	return &ChatResult{
		Response:     result.Message(),
		SessionID:    sessionID,
		AgentName:    agent.Name,
		ResponseTime: responseTime,
	}, nil
}

// sortFilesByAttachment 文件上下文必须按 agent 挂载顺序进入 prompt，
// 与上传时间无关。已删除的文件跳过。
func sortFilesByAttachment(fileIDs types.StringList, files []types.FileUpload) []types.FileUpload {
	byID := make(map[string]types.FileUpload, len(files))
	for _, f := range files {
		byID[f.ID] = f
	}

	ordered := make([]types.FileUpload, 0, len(files))
	for _, id := range fileIDs {
		if f, ok := byID[id]; ok {
			ordered = append(ordered, f)
		}
	}
	return ordered
}

func (l *ChatLogic) assemblePrompt(agent *types.Agent, files []types.FileUpload, history []types.Interaction, message string) string {
	defer l.core.Metrics().PromptAssembleTimer().ObserveDuration()

	builder := ai.NewPromptBuilder().WithInstructions(agent.SystemInstructions)
	for _, f := range files {
		builder.AddFileContext(f.Filename, f.ExtractedText)
	}
	for _, item := range history {
		builder.AddHistory(string(item.Role), item.Content)
	}
	builder.WithUserMessage(agent.PromptTemplate, message)
	return builder.Build()
}

// recordInteraction 落库尽力而为，失败只记日志，不影响本次回复
func (l *ChatLogic) recordInteraction(agent *types.Agent, sessionID, message, reply string, responseTime int64) {
	user := l.GetUserInfo().User
	now := time.Now().Unix()

	rows := []types.Interaction{
		{
			ID:             utils.GenUniqIDStr(),
			UserID:         user,
			AgentID:        agent.ID,
			OrganizationID: agent.OrganizationID,
			SessionID:      sessionID,
			Role:           types.INTERACTION_ROLE_USER,
			Content:        message,
			CreatedAt:      now,
		},
		{
			ID:             utils.GenUniqIDStr(),
			UserID:         user,
			AgentID:        agent.ID,
			OrganizationID: agent.OrganizationID,
			SessionID:      sessionID,
			Role:           types.INTERACTION_ROLE_ASSISTANT,
			Content:        reply,
			ResponseTime:   responseTime,
			CreatedAt:      now,
		},
	}

	for _, row := range rows {
		if err := l.core.Store().InteractionStore().Create(l.ctx, row); err != nil {
			l.core.Metrics().RecordFailureInc("interaction")
			slog.Error("failed to save interaction", slog.String("session_id", sessionID), slog.String("role", string(row.Role)), slog.String("error", err.Error()))
		}
	}

	if err := l.core.Store().AgentStore().IncrUsageCount(l.ctx, agent.ID); err != nil {
		l.core.Metrics().RecordFailureInc("usage_count")
		slog.Error("failed to increase agent usage count", slog.String("agent_id", agent.ID), slog.String("error", err.Error()))
	}

	if err := l.core.Store().UsageLogStore().Create(l.ctx, types.UsageLog{
		ID:             utils.GenUniqIDStr(),
		UserID:         user,
		OrganizationID: agent.OrganizationID,
		ResourceType:   types.RESOURCE_TYPE_AGENT,
		ResourceID:     agent.ID,
		Action:         types.USAGE_ACTION_CHAT,
		CreatedAt:      now,
	}); err != nil {
		l.core.Metrics().RecordFailureInc("usage_log")
		slog.Error("failed to save usage log", slog.String("agent_id", agent.ID), slog.String("error", err.Error()))
	}
}

func (l *ChatLogic) isOrganizationMember(ctx context.Context, organizationID, userID string) (bool, error) {
	_, err := l.core.Store().OrganizationMemberStore().GetMember(ctx, organizationID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
