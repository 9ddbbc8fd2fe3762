package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"wedonate/internal/auth"
	"wedonate/internal/lookup"
	"wedonate/internal/service"
	"wedonate/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type Service struct {
	logger *logrus.Logger
	config *types.Config

	orgs      *service.OrganizationService
	campaigns *service.CampaignService
	locations *service.LocationService

	tokens *auth.TokenIssuer
	cep    *lookup.ViaCEPClient
	cnpj   *lookup.CNPJClient
	pool   *pgxpool.Pool

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	orgs *service.OrganizationService,
	campaigns *service.CampaignService,
	locations *service.LocationService,
	tokens *auth.TokenIssuer,
	cep *lookup.ViaCEPClient,
	cnpj *lookup.CNPJClient,
	pool *pgxpool.Pool,
) *Service {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,

		orgs:      orgs,
		campaigns: campaigns,
		locations: locations,

		tokens: tokens,
		cep:    cep,
		cnpj:   cnpj,
		pool:   pool,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealthz, http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.HandleFunc("/api/v1/login", s.handleLogin, http.MethodPost)

		r.HandleFunc("/api/v1/organizacoes", s.handleCreateOrganization, http.MethodPost)
		r.HandleFunc("/api/v1/organizacoes", s.handleListOrganizations, http.MethodGet)
		r.HandleFunc("/api/v1/organizacoes/search", s.handleSearchOrganizations, http.MethodGet)
		r.HandleFunc("/api/v1/organizacoes/:id", s.handleGetOrganization, http.MethodGet)

		r.HandleFunc("/api/v1/campanhas", s.handleListCampaigns, http.MethodGet)
		r.HandleFunc("/api/v1/campanhas/search", s.handleSearchCampaigns, http.MethodGet)
		r.HandleFunc("/api/v1/campanhas/:id", s.handleGetCampaign, http.MethodGet)

		r.HandleFunc("/api/v1/locais", s.handleListLocations, http.MethodGet)
		r.HandleFunc("/api/v1/locais/:id", s.handleGetLocation, http.MethodGet)

		r.HandleFunc("/api/v1/cep/:cep", s.handleCEPLookup, http.MethodGet)
		r.HandleFunc("/api/v1/cnpj/:cnpj", s.handleCNPJLookup, http.MethodGet)
	})

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/api/v1/organizacoes/:id", s.handleUpdateOrganization, http.MethodPut)
		r.HandleFunc("/api/v1/organizacoes/:id", s.handleDeleteOrganization, http.MethodDelete)

		r.HandleFunc("/api/v1/campanhas", s.handleCreateCampaign, http.MethodPost)
		r.HandleFunc("/api/v1/campanhas/:id", s.handleUpdateCampaign, http.MethodPut)
		r.HandleFunc("/api/v1/campanhas/:id", s.handleDeleteCampaign, http.MethodDelete)

		r.HandleFunc("/api/v1/locais", s.handleCreateLocation, http.MethodPost)
		r.HandleFunc("/api/v1/locais/:id", s.handleUpdateLocation, http.MethodPut)
		r.HandleFunc("/api/v1/locais/:id", s.handleDeleteLocation, http.MethodDelete)
	})
}

func (s *Service) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.pool.Ping(ctx); err != nil {
		s.logger.WithError(err).Error("health check failed")
		s.respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
