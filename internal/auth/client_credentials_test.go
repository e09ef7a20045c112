package auth

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCredentialsFlow(t *testing.T) {
	db := testutil.NewTestDB(t)
	oauthService := NewOAuthService(db, testSecret)
	createClient(t, db, "test_client_id", "test_secret", models.RoleAdmin)
	router := tokenRouter(oauthService)

	w := requestToken(router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"test_client_id"},
		"client_secret": {"test_secret"},
		"scope":         {"pizzas:read"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Bearer", response["token_type"])
	assert.Equal(t, "pizzas:read", response["scope"])
	assert.NotContains(t, response, "refresh_token")

	accessToken, ok := response["access_token"].(string)
	require.True(t, ok)
	assert.Contains(t, accessToken, ".")
}

func TestClientCredentialsRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	oauthService := NewOAuthService(db, testSecret)
	createClient(t, db, "test_client_id", "correct_secret", models.RoleUser)
	router := tokenRouter(oauthService)

	testCases := []struct {
		name string
		form url.Values
	}{
		{
			name: "wrong secret",
			form: url.Values{"grant_type": {"client_credentials"}, "client_id": {"test_client_id"}, "client_secret": {"wrong"}},
		},
		{
			name: "unknown client",
			form: url.Values{"grant_type": {"client_credentials"}, "client_id": {"nobody"}, "client_secret": {"correct_secret"}},
		},
		{
			name: "unsupported grant",
			form: url.Values{"grant_type": {"password"}, "client_id": {"test_client_id"}, "client_secret": {"correct_secret"}},
		},
		{
			name: "scope not granted",
			form: url.Values{"grant_type": {"client_credentials"}, "client_id": {"test_client_id"}, "client_secret": {"correct_secret"}, "scope": {"kitchen:admin"}},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := requestToken(router, tt.form)
			assert.GreaterOrEqual(t, w.Code, 400)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestScopesAllowed(t *testing.T) {
	assert.True(t, scopesAllowed("pizzas:read", "pizzas:read pizzas:write"))
	assert.True(t, scopesAllowed("pizzas:write pizzas:read", "pizzas:read pizzas:write"))
	assert.False(t, scopesAllowed("pizzas:read kitchen", "pizzas:read"))
	assert.True(t, scopesAllowed("", ""))
}
