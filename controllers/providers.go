package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/ent/providerconfig"
	"github.com/monibridge/core/types"
	u "github.com/monibridge/core/utils"
	"github.com/monibridge/core/utils/logger"
)

// ProviderConfigPayload is the request body for provider configuration.
// Credential values are encrypted at rest and never echoed back.
type ProviderConfigPayload struct {
	EndpointURL string                 `json:"endpointUrl"`
	Credential  map[string]interface{} `json:"credential" binding:"required"`
	Settings    map[string]interface{} `json:"settings"`
}

var providerCategories = []types.ProviderCategory{
	types.ProviderCategoryBanking,
	types.ProviderCategoryKYC,
	types.ProviderCategoryRates,
	types.ProviderCategoryEmail,
	types.ProviderCategoryBlockchain,
}

// ListProviders controller returns every registered adapter with its stored
// configuration state. Credentials never leave the database.
func (ctrl *Controller) ListProviders(ctx *gin.Context) {
	configs, err := ctrl.client.ProviderConfig.Query().All(ctx)
	if err != nil {
		logger.Errorf("ListProviders: %v", nil, err)
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to fetch providers", nil)
		return
	}

	byIdentifier := make(map[string]*ent.ProviderConfig, len(configs))
	for _, conf := range configs {
		byIdentifier[conf.Identifier] = conf
	}

	items := make([]map[string]interface{}, 0)
	for _, category := range providerCategories {
		for _, identifier := range ctrl.registry.Identifiers(category) {
			meta, _ := ctrl.registry.Meta(identifier)
			item := map[string]interface{}{
				"identifier":  identifier,
				"category":    string(category),
				"displayName": meta.DisplayName,
				"configured":  false,
				"enabled":     false,
				"status":      string(providerconfig.StatusInactive),
			}
			if conf, ok := byIdentifier[identifier]; ok {
				item["configured"] = true
				item["enabled"] = conf.Enabled
				item["status"] = string(conf.Status)
				item["endpointUrl"] = conf.EndpointURL
				if !conf.LastTestedAt.IsZero() {
					item["lastTestedAt"] = conf.LastTestedAt
				}
			}
			items = append(items, item)
		}
	}

	u.APIResponse(ctx, http.StatusOK, "success", "OK", items)
}

// UpdateProviderConfig controller stores new credentials and settings for a provider
func (ctrl *Controller) UpdateProviderConfig(ctx *gin.Context) {
	identifier := ctx.Param("identifier")

	var payload ProviderConfigPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error",
			"Failed to validate payload", u.GetErrorData(err))
		return
	}

	conf, err := ctrl.admin.UpdateConfig(ctx, identifier, payload.EndpointURL, payload.Credential, payload.Settings)
	if err != nil {
		var notFound types.ErrProviderNotFound
		if errors.As(err, &notFound) {
			u.APIResponse(ctx, http.StatusNotFound, "error", "Unknown provider", nil)
			return
		}
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to update provider config", err.Error())
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "Provider config updated", map[string]interface{}{
		"identifier": conf.Identifier,
		"status":     string(conf.Status),
		"enabled":    conf.Enabled,
	})
}

// ActivateProvider controller test-connects and enables a provider
func (ctrl *Controller) ActivateProvider(ctx *gin.Context) {
	identifier := ctx.Param("identifier")

	if err := ctrl.admin.Activate(ctx, identifier); err != nil {
		if isUnknownProvider(err) {
			u.APIResponse(ctx, http.StatusNotFound, "error", "Provider not configured", nil)
			return
		}
		u.APIResponse(ctx, http.StatusBadGateway, "error", "Provider activation failed", err.Error())
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "Provider activated", nil)
}

// DeactivateProvider controller disables a provider without deleting its config
func (ctrl *Controller) DeactivateProvider(ctx *gin.Context) {
	identifier := ctx.Param("identifier")

	if err := ctrl.admin.Deactivate(ctx, identifier); err != nil {
		if isUnknownProvider(err) {
			u.APIResponse(ctx, http.StatusNotFound, "error", "Provider not configured", nil)
			return
		}
		logger.Errorf("DeactivateProvider: %v", nil, err)
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to deactivate provider", nil)
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "Provider deactivated", nil)
}

// TestProviderConnection controller runs the adapter's connectivity probe
func (ctrl *Controller) TestProviderConnection(ctx *gin.Context) {
	identifier := ctx.Param("identifier")

	if err := ctrl.admin.TestConnection(ctx, identifier); err != nil {
		if isUnknownProvider(err) {
			u.APIResponse(ctx, http.StatusNotFound, "error", "Provider not configured", nil)
			return
		}
		u.APIResponse(ctx, http.StatusBadGateway, "error", "Provider connection test failed", err.Error())
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "Provider connection OK", nil)
}

func isUnknownProvider(err error) bool {
	var notFound types.ErrProviderNotFound
	var notConfigured types.ErrProviderNotConfigured
	return errors.As(err, &notFound) || errors.As(err, &notConfigured)
}
