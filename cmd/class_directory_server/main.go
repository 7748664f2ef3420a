package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"class_directory_server/internal/config"
	"class_directory_server/internal/dao/storage"
	"class_directory_server/internal/handler"
	"class_directory_server/internal/http_server"
	"class_directory_server/internal/infrastructure/agent"
	"class_directory_server/internal/infrastructure/logger"
	"class_directory_server/internal/infrastructure/registry"
	"class_directory_server/internal/service"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化存储（按配置选择 sqlite-memory / sqlite / postgres / mysql）
	store, err := storage.Open(&conf.StorageConfig)
	if err != nil {
		zap.L().Fatal("存储初始化失败", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			zap.L().Error("关闭存储失败", zap.Error(err))
		}
	}()
	zap.L().Info("存储初始化成功", zap.String("driver", conf.StorageConfig.Driver))

	// 4. 初始化上游客户端
	registryClient := registry.NewClient(&conf.RegistryConfig)
	agentClient := agent.NewClient(&conf.AgentConfig)
	zap.L().Info("上游客户端初始化成功")

	// 5. 初始化 Service 层 (依赖注入)
	service.InitServices(store.Repositories(), registryClient, agentClient)
	zap.L().Info("Service 层初始化成功")

	// 6. 初始化参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("校验翻译器初始化失败", zap.Error(err))
	}

	// 7. 初始化 HTTP 服务器
	handlers := handler.NewHandlers(service.Svc)
	engine := http_server.Init(handlers)
	zap.L().Info("HTTP 服务器初始化成功")

	// 8. 启动服务
	host := conf.MainConfig.Host
	port := conf.MainConfig.Port
	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	zap.L().Info("服务器已关闭")
}
