package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seriousplay/MegaSpace/pkg/errors"
	"github.com/seriousplay/MegaSpace/pkg/types"
)

func memberOf(orgs map[string][]string) MemberChecker {
	return func(ctx context.Context, organizationID, userID string) (bool, error) {
		for _, u := range orgs[organizationID] {
			if u == userID {
				return true, nil
			}
		}
		return false, nil
	}
}

func TestCheckAgentAccess(t *testing.T) {
	members := memberOf(map[string][]string{
		"org-1": {"user-a", "user-b"},
	})

	tests := []struct {
		name     string
		agent    types.Agent
		userID   string
		wantCode int // 0 表示放行
	}{
		{
			name:   "public agent is open to everyone",
			agent:  types.Agent{Visibility: types.AGENT_VISIBILITY_PUBLIC, CreatorID: "someone-else"},
			userID: "user-a",
		},
		{
			name:   "private agent allows creator",
			agent:  types.Agent{Visibility: types.AGENT_VISIBILITY_PRIVATE, CreatorID: "user-a"},
			userID: "user-a",
		},
		{
			name:     "private agent rejects others",
			agent:    types.Agent{Visibility: types.AGENT_VISIBILITY_PRIVATE, CreatorID: "user-a"},
			userID:   "user-b",
			wantCode: http.StatusForbidden,
		},
		{
			name:   "organization agent allows member",
			agent:  types.Agent{Visibility: types.AGENT_VISIBILITY_ORGANIZATION, CreatorID: "user-a", OrganizationID: "org-1"},
			userID: "user-b",
		},
		{
			name:     "organization agent rejects non member",
			agent:    types.Agent{Visibility: types.AGENT_VISIBILITY_ORGANIZATION, CreatorID: "user-a", OrganizationID: "org-1"},
			userID:   "user-c",
			wantCode: http.StatusForbidden,
		},
		{
			name:   "organization agent always allows creator",
			agent:  types.Agent{Visibility: types.AGENT_VISIBILITY_ORGANIZATION, CreatorID: "user-c", OrganizationID: "org-1"},
			userID: "user-c",
		},
		{
			name:     "organization agent without organization is rejected",
			agent:    types.Agent{Visibility: types.AGENT_VISIBILITY_ORGANIZATION, CreatorID: "user-a"},
			userID:   "user-b",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "unknown visibility is rejected",
			agent:    types.Agent{Visibility: "internal", CreatorID: "user-a"},
			userID:   "user-a",
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAgentAccess(context.Background(), &tt.agent, tt.userID, members)
			if tt.wantCode == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			cerr, ok := err.(*errors.CustomizedError)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, cerr.GetCode())
		})
	}
}

func TestCheckAgentAccessMemberLookupError(t *testing.T) {
	boom := func(ctx context.Context, organizationID, userID string) (bool, error) {
		return false, assert.AnError
	}

	agent := types.Agent{Visibility: types.AGENT_VISIBILITY_ORGANIZATION, CreatorID: "user-a", OrganizationID: "org-1"}
	err := CheckAgentAccess(context.Background(), &agent, "user-b", boom)
	require.Error(t, err)

	cerr, ok := err.(*errors.CustomizedError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, cerr.GetCode())
}
