package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smarttech/config"
	"smarttech/middleware"
	"smarttech/pkg/log"
	"smarttech/pkg/response"
	"smarttech/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AppProvider struct {
	Engine   *gin.Engine
	Conf     *config.Config
	Notifier service.INotifier
}

func NewGinEngine(conf *config.Config, h *Handlers) *gin.Engine {
	if !conf.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// 兜底panic与c.Errors，替代gin.Recovery
	r.Use(response.ErrorMiddleware())
	r.Use(CORSMiddleware())
	r.Use(middleware.GinZap())
	r.Use(middleware.Prometheus())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for _, router := range h.routers() {
		router.RegisterRouter(r, conf)
	}
	return r
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Run 启动HTTP服务并等待退出信号
func Run(app *AppProvider) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.Conf.Server.Http),
		Handler: app.Engine,
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		log.L.Info("http server start", zap.Int("port", app.Conf.Server.Http))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-quit:
			log.L.Info("shutting down", zap.String("signal", sig.String()))
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		// 冲刷未发送完的通知邮件
		app.Notifier.Wait()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
