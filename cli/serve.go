package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"EmoGoBackend/config"
	"EmoGoBackend/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	a, err := newApp(cmd.Context(), flags.configDir)
	if err != nil {
		return err
	}

	// 设置Gin模式
	if a.conf.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := routes.NewRouter(routes.Dependencies{
		Records:      a.records,
		Exporter:     a.exporter,
		DatabaseName: a.conf.DatabaseName,
	}, a.conf.AllowOrigins())

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:              ":" + a.conf.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 在goroutine中启动服务器
	serveErr := make(chan error, 1)
	go func() {
		config.Logger.Infow("启动服务器", "port", a.conf.ServerPort, "store", a.store.Driver())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		if err != nil {
			config.Logger.Errorw("服务器启动失败", "error", err)
			a.Close(context.Background())
			return err
		}
	case <-quit:
	}
	config.Logger.Infow("正在关闭服务器...")

	// 创建超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := srv.Shutdown(ctx); err != nil {
		config.Logger.Errorw("服务器关闭失败", "error", err)
	}
	a.Close(ctx)

	config.Logger.Infow("服务器已关闭")
	return nil
}
