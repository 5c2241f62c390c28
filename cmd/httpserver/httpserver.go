// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-wallet/internal/middleware"
	"github.com/go-petr/pet-wallet/internal/transactionrepo"
	"github.com/go-petr/pet-wallet/internal/transferdelivery"
	"github.com/go-petr/pet-wallet/internal/transferrepo"
	"github.com/go-petr/pet-wallet/internal/transferservice"
	"github.com/go-petr/pet-wallet/internal/userdelivery"
	"github.com/go-petr/pet-wallet/internal/userrepo"
	"github.com/go-petr/pet-wallet/internal/userservice"
	"github.com/go-petr/pet-wallet/internal/walletdelivery"
	"github.com/go-petr/pet-wallet/internal/walletrepo"
	"github.com/go-petr/pet-wallet/internal/walletservice"
	"github.com/go-petr/pet-wallet/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	walletRepo := walletrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)
	transferRepo := transferrepo.NewRepoPGS(conn)

	userService := userservice.New(userRepo)
	walletService := walletservice.New(walletRepo, transactionRepo)
	transferService := transferservice.New(transferRepo)

	userHandler := userdelivery.NewHandler(userService)
	walletHandler := walletdelivery.NewHandler(walletService)
	transferHandler := transferdelivery.NewHandler(transferService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/deposits", transferHandler.Deposit)
	engine.POST("/transfers", transferHandler.Transfer)
	engine.GET("/wallets/:userid", walletHandler.Get)
	engine.GET("/wallets/:userid/transactions", walletHandler.ListTransactions)

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
