package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/config"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/middlewares"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/mirrorapi"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/users"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/utils"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/xerosync"
)

const defaultPort = "8080"

func main() {
	port := os.Getenv("XERO_MIRROR_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultPort
	}

	logger := config.GetLogger()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		cid := c.GetHeader("x-correlation-id")
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Request = c.Request.WithContext(utils.SetCorrelationIdInContext(c.Request.Context(), cid))
		c.Next()
	})
	r.Use(func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		if config.GetMongoDB() == nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Next()
	})
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	corsConfig := cors.DefaultConfig()
	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production") {
		if allowedOrigins == "" {
			corsConfig.AllowOrigins = []string{}
		} else {
			corsConfig.AllowOrigins = splitAndTrim(allowedOrigins)
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("token", "Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length")
	corsConfig.AllowCredentials = true

	r.Use(cors.New(corsConfig))
	r.Use(requestLogger(logger))
	r.Use(gin.Recovery())

	xeroCfg := config.LoadXeroConfig()
	store := xerosync.NewMongoStore()
	engine := xerosync.NewEngine(xeroCfg, store, logger)
	scheduler := xerosync.NewScheduler(engine, logger, xeroCfg)

	registerRoutes(r, engine, logger)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()

	config.ConnectMongoWithRetry()
	config.ConnectRedisWithRetry()

	indexCtx, cancelIndexes := context.WithTimeout(sigCtx, 30*time.Second)
	if err := xerosync.EnsureMirrorIndexes(indexCtx, config.GetMongoDB()); err != nil {
		logger.WithFields(logrus.Fields{"field": "indexes"}).Error(err)
	}
	cancelIndexes()

	scheduler.Start(sigCtx)

	select {
	case <-sigCtx.Done():
		scheduler.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	case err := <-serverErrCh:
		if err != nil && err != http.ErrServerClosed {
			logger.WithFields(logrus.Fields{"field": "server"}).Error(err)
		}
	}
}

func registerRoutes(r *gin.Engine, engine *xerosync.Engine, logger *logrus.Logger) {
	triggers := map[string]struct {
		route string
		label string
	}{
		"accounts":         {"/syncAllAccounts", "Accounts"},
		"contacts":         {"/syncAllContacts", "Contacts"},
		"invoices":         {"/syncAllInvoices", "Invoices"},
		"payments":         {"/syncAllPayments", "Payments"},
		"purchaseorders":   {"/syncAllPurchaseOrders", "Purchase orders"},
		"banktransactions": {"/syncAllTransactions", "Transactions"},
		"users":            {"/syncAllUsers", "Users"},
	}
	for _, entity := range xerosync.Entities() {
		t, ok := triggers[entity.Name]
		if !ok {
			continue
		}
		r.GET(t.route, xerosync.TriggerSyncHandler(engine, logger, entity, t.label))
	}

	account := r.Group("/api/v1/account")
	account.GET("/getAllAccounts", mirrorapi.GetAllAccounts())

	contact := r.Group("/api/v1/contact")
	contact.GET("/getAllContacts", mirrorapi.GetAllContacts())

	invoice := r.Group("/api/v1/invoice")
	invoice.GET("/getAllInvoices", mirrorapi.GetAllInvoices())
	invoice.GET("/invoice-detail/:id", mirrorapi.GetInvoiceDetail())

	payment := r.Group("/api/v1/payment")
	payment.GET("/getAllPayments", mirrorapi.GetAllPayments())

	purchaseOrder := r.Group("/api/v1/purchaseorder")
	purchaseOrder.GET("/getAllPurchaseOrder", mirrorapi.GetAllPurchaseOrders())

	transaction := r.Group("/api/v1/transaction")
	transaction.GET("/getAllTransaction", mirrorapi.GetAllTransactions())
	transaction.GET("/transaction-detail/:id", mirrorapi.GetTransactionDetail())
	transaction.GET("/bankDetails", mirrorapi.GetBankDetails())

	remoteUser := r.Group("/api/v1/user")
	remoteUser.GET("/getAllUsers", mirrorapi.GetAllRemoteUsers())

	auth := r.Group("/api/v1/auth")
	auth.POST("/register", users.Register())
	auth.POST("/login", users.Login())
	auth.GET("/users", middlewares.AuthMiddleware(), users.ListUsers())
	auth.POST("/change-password", middlewares.AuthMiddleware(), users.ChangePassword())
	auth.POST("/logout", middlewares.AuthMiddleware(), users.Logout())
	auth.GET("/roles", middlewares.AuthMiddleware(), users.ListRoles())
	auth.POST("/roles", middlewares.AuthMiddleware(), users.CreateRole())
	auth.PUT("/roles/:id", middlewares.AuthMiddleware(), users.UpdateRole())
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		cid, _ := utils.GetCorrelationIdFromContext(c.Request.Context())
		logger.WithFields(logrus.Fields{
			"status":         c.Writer.Status(),
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"latency":        latency.String(),
			"correlation_id": cid,
		}).Info("request")
	}
}
