package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/billingkit/modules/selfservice"
	"github.com/dmitrymomot/billingkit/pkg/billing"
	"github.com/dmitrymomot/billingkit/pkg/config"
	"github.com/dmitrymomot/billingkit/pkg/httpserver"
	"github.com/dmitrymomot/billingkit/pkg/jwt"
	"github.com/dmitrymomot/billingkit/pkg/logger"
	"github.com/dmitrymomot/billingkit/pkg/requestid"
)

type authConfig struct {
	SigningKey string `env:"JWT_SIGNING_KEY,required"`
}

func main() {
	log := logger.New(logger.WithService("billingkit"))

	var (
		serverCfg  httpserver.Config
		stripeCfg  billing.StripeConfig
		billingCfg billing.Config
		authCfg    authConfig
	)
	config.MustLoad(&serverCfg)
	config.MustLoad(&stripeCfg)
	config.MustLoad(&billingCfg)
	config.MustLoad(&authCfg)

	provider, err := billing.NewStripeProvider(stripeCfg)
	if err != nil {
		log.Error("failed to create stripe provider", logger.Error(err))
		os.Exit(1)
	}

	svc, err := billing.NewService(
		provider,
		billing.StaticCustomerResolver(billingCfg.CustomerID),
		billingCfg.ReturnURL,
	)
	if err != nil {
		log.Error("failed to create billing service", logger.Error(err))
		os.Exit(1)
	}

	tokens, err := jwt.NewFromString(authCfg.SigningKey)
	if err != nil {
		log.Error("failed to create token service", logger.Error(err))
		os.Exit(1)
	}

	ctx := context.Background()

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(selfservice.Authenticator(tokens))
	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Mount("/billing", selfservice.New(svc,
		selfservice.WithLogger(log),
		selfservice.WithRequestTimeout(billingCfg.RequestTimeout),
	).Router())

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
