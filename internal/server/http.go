package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kubev2v/filter-clauses/internal/config"
	"github.com/kubev2v/filter-clauses/internal/server/middlewares"
	"github.com/kubev2v/filter-clauses/pkg/certificates"
)

const (
	ProductionServer string = "prod"
	DevServer        string = "dev"
	apiV1            string = "/api/v1"

	certificateValidity = 365 * 24 * time.Hour
)

type Server struct {
	srv *http.Server
}

func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	gin.SetMode(gin.DebugMode)
	if cfg.Server.ServerMode == ProductionServer {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.MaxMultipartMemory = 32 << 20

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.Server.HTTPPort),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.Server.ServerMode == ProductionServer {
		engine.Static("/assets", path.Join(cfg.Server.StaticsFolder, "assets"))
		engine.StaticFile("/", path.Join(cfg.Server.StaticsFolder, "index.html"))
		engine.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
				return
			}
			c.File(path.Join(cfg.Server.StaticsFolder, "index.html"))
		})

		tlsConfig, err := certificates.SelfSignedTLSConfig(certificates.Subject{
			Organization: "filter-clauses",
			Unit:         "server",
		}, certificateValidity)
		if err != nil {
			return nil, fmt.Errorf("failed to generate server's certificates: %w", err)
		}
		srv.TLSConfig = tlsConfig
	}

	router := engine.Group(apiV1)
	router.Use(
		middlewares.Logger(),
		ginzap.RecoveryWithZap(zap.S().Desugar(), true),
	)

	if cfg.Auth.Enabled {
		secret, err := config.ReadSecret(cfg.Auth.JWTFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read jwt secret: %w", err)
		}
		router.Use(middlewares.Auth(middlewares.NewAuthenticator(secret, cfg.Auth.Issuer)))
	}

	registerHandlerFn(router)

	return &Server{srv: srv}, nil
}

// Start blocks until the server stops. A graceful shutdown is not reported as an error.
func (r *Server) Start(ctx context.Context) error {
	zap.S().Named("server").Infow("listening", "address", r.srv.Addr, "tls", r.srv.TLSConfig != nil)

	var err error
	if r.srv.TLSConfig != nil {
		err = r.srv.ListenAndServeTLS("", "")
	} else {
		err = r.srv.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (r *Server) Stop(ctx context.Context) {
	if err := r.srv.Shutdown(ctx); err != nil {
		zap.S().Errorw("server shutdown", "error", err)
	}
}
