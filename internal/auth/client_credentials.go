package auth

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	log "github.com/sirupsen/logrus"
)

// HandleToken serves the client credentials grant
// @Summary Token Endpoint
// @Description Obtain a bearer access token using the client credentials grant
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Must be client_credentials"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param scope formData string false "Space separated subset of the client's scopes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.OAuth2Error
// @Failure 401 {object} models.OAuth2Error
// @Router /oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	if err := o.server.HandleTokenRequest(c.Writer, c.Request); err != nil {
		log.WithError(err).Error("Failed to write token response")
	}
}

// clientScopeHandler allows a request when every requested scope was granted to the client
func (o *OAuthService) clientScopeHandler(tgr *oauth2.TokenGenerateRequest) (bool, error) {
	if tgr.Scope == "" {
		return true, nil
	}
	ctx := context.Background()
	if tgr.Request != nil {
		ctx = tgr.Request.Context()
	}
	client, err := o.clients.find(ctx, tgr.ClientID)
	if err != nil {
		return false, err
	}
	return scopesAllowed(tgr.Scope, client.Scopes), nil
}

func scopesAllowed(requested, granted string) bool {
	allowed := make(map[string]bool)
	for _, s := range strings.Fields(granted) {
		allowed[s] = true
	}
	for _, s := range strings.Fields(requested) {
		if !allowed[s] {
			return false
		}
	}
	return true
}
