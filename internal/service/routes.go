package service

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/garagedesk/internal/auth"
	"github.com/mmynk/garagedesk/internal/middleware"
	"github.com/mmynk/garagedesk/internal/storage"
	"github.com/mmynk/garagedesk/internal/workorder"
	"github.com/mmynk/garagedesk/pkg/api/apiconnect"
)

// Deps are the shared dependencies of every service.
type Deps struct {
	Store             storage.Store
	JWT               *auth.JWTManager
	AllowRegistration bool
	Logger            *slog.Logger
}

// PublicProcedures can be called without a session token.
func PublicProcedures() []string {
	return []string{
		apiconnect.AuthServiceRegisterProcedure,
		apiconnect.AuthServiceLoginProcedure,
		apiconnect.AuthServiceLogoutProcedure,
	}
}

// Mount registers every Connect service on mux behind request logging and
// the session check. Extra handler options are applied after those.
func Mount(mux *http.ServeMux, d Deps, opts ...connect.HandlerOption) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	opts = append([]connect.HandlerOption{
		connect.WithInterceptors(
			middleware.LoggingInterceptor(),
			middleware.RequireAuth(d.JWT, PublicProcedures()...),
		),
	}, opts...)

	authenticator := auth.NewPasswordAuthenticator(d.Store)
	processor := workorder.NewProcessor(d.Store)

	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(authenticator, d.JWT, d.Store, d.AllowRegistration, logger), opts...))
	mux.Handle(apiconnect.NewCustomerServiceHandler(NewCustomerService(d.Store), opts...))
	mux.Handle(apiconnect.NewWorkOrderServiceHandler(NewWorkOrderService(d.Store, processor), opts...))
	mux.Handle(apiconnect.NewInventoryServiceHandler(NewInventoryService(d.Store), opts...))
	mux.Handle(apiconnect.NewCatalogServiceHandler(NewCatalogService(d.Store), opts...))
	mux.Handle(apiconnect.NewWorkerServiceHandler(NewWorkerService(d.Store), opts...))
	mux.Handle(apiconnect.NewSpendingServiceHandler(NewSpendingService(d.Store), opts...))
	mux.Handle(apiconnect.NewInsightsServiceHandler(NewInsightsService(d.Store), opts...))
}
