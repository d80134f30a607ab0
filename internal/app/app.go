package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/realtorcrm/authsvc/domain"
	"github.com/realtorcrm/authsvc/internal/config"
	httpx "github.com/realtorcrm/authsvc/internal/http"
	"github.com/realtorcrm/authsvc/internal/http/handlers"
	"github.com/realtorcrm/authsvc/internal/http/middleware"
	"github.com/realtorcrm/authsvc/pkg/logger"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(container.AuthSvc)
	leadH := handlers.NewLeadHandlers(container.LeadRepo)
	polH := &handlers.PolicyHandlers{PolicySvc: container.PolicySvc}

	jwtMW := middleware.NewAuthMW(container.TokenSvc, container.SessionRepo)
	casbinMW := middleware.NewCasbinMW(container.Enforcer)
	tenantMW := middleware.TenantResolver(cfg.Tenant)

	r := httpx.BuildRouter(authH, leadH, polH, jwtMW, casbinMW, tenantMW)

	seedPolicies(container.Enforcer)

	addr := ":" + cfg.Port
	log := logger.Get()
	log.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role-to-route policy on first boot.
// A partial seed is reported per rule so a half-applied policy set is
// visible in the logs rather than silently live.
func seedPolicies(e domain.CasbinEnforcer) {
	log := logger.Get()
	policies, err := e.GetPolicy()
	if err != nil {
		log.Warn().Err(err).Msg("casbin: could not read existing policies, skipping seed")
		return
	}
	if len(policies) > 0 {
		return
	}

	seed := [][3]string{
		{"role_Organization", "/admin/*", "(GET|POST|DELETE)"},
	}
	for _, role := range []string{"role_Client", "role_Organization", "role_Realtor"} {
		seed = append(seed,
			[3]string{role, "/api/auth/current-user", "GET"},
			[3]string{role, "/api/auth/account-setup", "POST"},
			[3]string{role, "/api/auth/logout", "POST"},
		)
	}

	failed := 0
	for _, rule := range seed {
		if _, err := e.AddPolicy(rule[0], rule[1], rule[2]); err != nil {
			failed++
			log.Warn().Err(err).
				Str("sub", rule[0]).
				Str("obj", rule[1]).
				Str("act", rule[2]).
				Msg("casbin: failed to add seed policy")
		}
	}

	if err := e.SavePolicy(); err != nil {
		log.Warn().Err(err).Msg("casbin: failed to persist seed policies")
		return
	}
	if failed > 0 {
		log.Warn().Int("failed", failed).Int("total", len(seed)).Msg("casbin: seeded policies partially")
		return
	}
	log.Info().Int("total", len(seed)).Msg("casbin: seeded default policies")
}
