package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monibridge/core/ent"
	"github.com/monibridge/core/services/audit"
	"github.com/monibridge/core/services/ledger"
	"github.com/monibridge/core/services/registry"
	u "github.com/monibridge/core/utils"
)

// Controller carries the services the HTTP handlers operate on.
type Controller struct {
	client   *ent.Client
	ledger   *ledger.Service
	factory  *registry.Factory
	admin    *registry.Admin
	registry *registry.Registry
	auditor  *audit.Service
}

// NewController creates a new instance of Controller with injected services
func NewController(client *ent.Client, ledgerService *ledger.Service, factory *registry.Factory, admin *registry.Admin, reg *registry.Registry, auditor *audit.Service) *Controller {
	return &Controller{
		client:   client,
		ledger:   ledgerService,
		factory:  factory,
		admin:    admin,
		registry: reg,
		auditor:  auditor,
	}
}

// GetStatus controller reports process health
func (ctrl *Controller) GetStatus(ctx *gin.Context) {
	u.APIResponse(ctx, http.StatusOK, "success", "OK", map[string]interface{}{
		"healthy": true,
	})
}
