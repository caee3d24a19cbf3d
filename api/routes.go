package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/kubera-dev/kubera-server/internal/config"
	accountv1 "github.com/kubera-dev/kubera-server/internal/handlers/v1/account"
	"github.com/kubera-dev/kubera-server/internal/handlers/v1/status"
	transactionv1 "github.com/kubera-dev/kubera-server/internal/handlers/v1/transaction"
	"github.com/kubera-dev/kubera-server/internal/logging"
	"github.com/kubera-dev/kubera-server/internal/service"
)

// Rest wires the HTTP surface: huma operations over a net/http server.
type Rest struct {
	Logger  *logrus.Logger
	Config  *config.Config
	Service *service.Service
}

// Serve registers every endpoint and blocks serving HTTP until the listener
// fails.
func (r *Rest) Serve() error {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig(r.Config.ServiceName, r.Config.ServiceVersion))
	api.UseMiddleware(logging.Middleware(r.Logger))

	status.NewHandler(r.Config).Register(api)

	accountv1.NewListAccountsHandler(r.Service.Account).Register(api)
	accountv1.NewGetAccountHandler(r.Service.Account).Register(api)
	accountv1.NewCreateAccountHandler(r.Service.Account).Register(api)
	accountv1.NewUpdateAccountHandler(r.Service.Account).Register(api)
	accountv1.NewDeleteAccountHandler(r.Service.Account).Register(api)

	transactionv1.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transactionv1.NewGetTransactionHandler(r.Service.Transaction).Register(api)
	transactionv1.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transactionv1.NewUpdateTransactionHandler(r.Service.Transaction).Register(api)
	transactionv1.NewDeleteTransactionHandler(r.Service.Transaction).Register(api)

	server := http.Server{
		Addr:              ":" + r.Config.HTTPPort,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.WithField("port", r.Config.HTTPPort).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	return err
}
