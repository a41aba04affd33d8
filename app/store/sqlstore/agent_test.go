package sqlstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/seriousplay/MegaSpace/pkg/testutils"
	"github.com/seriousplay/MegaSpace/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPGConfig struct {
	DSN string
}

func (m testPGConfig) FormatDSN() string {
	return m.DSN
}

func setupTestProvider(t *testing.T) *Provider {
	testutils.LoadEnv()
	dsn := os.Getenv("MEGASPACE_POSTGRESQL_DSN")
	if dsn == "" {
		t.Skip("MEGASPACE_POSTGRESQL_DSN not set")
	}

	provider := MustSetup(testPGConfig{DSN: dsn})()
	require.NoError(t, provider.Install())
	return provider
}

func TestAgentStoreRoundTrip(t *testing.T) {
	provider := setupTestProvider(t)
	store := provider.AgentStore()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*20)
	defer cancel()

	agent := types.Agent{
		ID:                 "test-agent-" + time.Now().Format("20060102150405"),
		Name:               "math tutor",
		Category:           "study",
		SystemInstructions: "You are a patient math tutor.",
		Visibility:         types.AGENT_VISIBILITY_PRIVATE,
		CreatorID:          "test-user",
		FileIDs:            types.StringList{"f1", "f2"},
		IsActive:           true,
	}
	require.NoError(t, store.Create(ctx, agent))
	defer store.Delete(ctx, agent.ID)

	got, err := store.GetAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.Name, got.Name)
	assert.Equal(t, types.StringList{"f1", "f2"}, got.FileIDs)

	require.NoError(t, store.IncrUsageCount(ctx, agent.ID))
	got, err = store.GetAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UsageCount)

	require.NoError(t, store.Deactivate(ctx, agent.ID))
	got, err = store.GetAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
