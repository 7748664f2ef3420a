// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName    string `toml:"appName"`    // 应用名称，用于日志标识等
	Host       string `toml:"host"`       // 服务器监听地址，如 "0.0.0.0"
	Port       int    `toml:"port"`       // 服务器监听端口，如 8000
	SslEnabled bool   `toml:"sslEnabled"` // 是否启用 TLS 重定向中间件
}

// StorageConfig 存储配置
// driver 取值：
//   - "sqlite-memory" 内存 sqlite，仅用于开发和测试
//   - "sqlite"        本地文件 sqlite（path 指定文件）
//   - "postgres"      PostgreSQL
//   - "mysql"         MySQL
type StorageConfig struct {
	Driver       string `toml:"driver"`       // 存储驱动
	Path         string `toml:"path"`         // sqlite 文件路径，如 "./dev.db"
	Host         string `toml:"host"`         // 数据库服务器地址
	Port         int    `toml:"port"`         // 数据库端口
	User         string `toml:"user"`         // 数据库用户名
	Password     string `toml:"password"`     // 数据库密码
	DatabaseName string `toml:"databaseName"` // 数据库名称
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// RegistryConfig 身份注册中心配置
// 注册中心负责记录身份与角色（teacher/student）的对应关系
type RegistryConfig struct {
	Endpoint string        `toml:"endpoint"` // 注册中心地址，如 "http://registry:9000"
	Timeout  time.Duration `toml:"timeout"`  // 单次调用超时时间（秒）
}

// AgentConfig 智能体服务配置
// 智能体服务负责生成学生用户名、代理答疑请求
type AgentConfig struct {
	Endpoint string        `toml:"endpoint"` // 智能体服务地址
	Timeout  time.Duration `toml:"timeout"`  // 单次调用超时时间（秒）
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig     `toml:"mainConfig"`     // 主配置
	StorageConfig  `toml:"storageConfig"`  // 存储配置
	LogConfig      `toml:"logConfig"`      // 日志配置
	RegistryConfig `toml:"registryConfig"` // 注册中心配置
	AgentConfig    `toml:"agentConfig"`    // 智能体服务配置
}

// config 全局配置单例，延迟加载
var config *Config

// LoadConfig 从多个候选路径加载配置文件
// 按顺序尝试加载，找到第一个可用的配置文件即停止
func LoadConfig() error {
	// 候选配置文件路径（优先加载本地配置）
	paths := []string{
		"configs/config_local.toml",       // 本地开发配置（优先）
		"configs/config.toml",             // 默认配置
		"../../configs/config_local.toml", // 从子目录运行时的路径
		"../../configs/config.toml",       // 从子目录运行时的路径
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件，加载失败时退回默认值
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // 忽略加载错误，使用默认值
		config.applyDefaults()
	}
	return config
}

// applyDefaults 填充缺省配置
// 缺省使用内存 sqlite，保证零配置也能本地启动
func (c *Config) applyDefaults() {
	if c.MainConfig.AppName == "" {
		c.MainConfig.AppName = "class-directory-server"
	}
	if c.MainConfig.Host == "" {
		c.MainConfig.Host = "0.0.0.0"
	}
	if c.MainConfig.Port == 0 {
		c.MainConfig.Port = 8000
	}
	if c.StorageConfig.Driver == "" {
		c.StorageConfig.Driver = "sqlite-memory"
	}
	if c.StorageConfig.Path == "" {
		c.StorageConfig.Path = "./dev.db"
	}
	// 超时配置按秒计，客户端构造时乘以 time.Second
	if c.RegistryConfig.Timeout == 0 {
		c.RegistryConfig.Timeout = 5
	}
	if c.AgentConfig.Timeout == 0 {
		c.AgentConfig.Timeout = 15
	}
}
