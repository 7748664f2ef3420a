// Package storage 提供数据访问层的初始化和生命周期管理
// 负责按配置选择存储驱动、建立连接、自动迁移表结构、初始化 Repository 层
package storage

import (
	"fmt"

	"class_directory_server/internal/config"
	"class_directory_server/internal/dao/storage/repository"
	"class_directory_server/internal/model"

	"github.com/glebarez/sqlite" // 纯 Go sqlite 驱动（开发/测试用）
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Store 存储句柄
// 显式构造、显式注入，不再使用包级单例；Close 负责释放连接池
type Store struct {
	db *gorm.DB
}

// Open 按配置建立数据库连接并完成表结构迁移
// driver 的取舍见 config.StorageConfig：
//   - sqlite/sqlite-memory 仅用于开发和测试
//   - postgres/mysql 用于生产部署
func Open(conf *config.StorageConfig) (*Store, error) {
	dialector, err := buildDialector(conf)
	if err != nil {
		return nil, err
	}

	// TranslateError: 将各驱动的唯一索引冲突统一翻译为 gorm.ErrDuplicatedKey，
	// 提交时发现的冲突才能与预检查冲突走同一条错误路径
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open storage (driver=%s): %w", conf.Driver, err)
	}

	// 内存库每个新连接都是一个独立的空库，连接池必须钉死在单连接上
	if conf.Driver == "sqlite-memory" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	// AutoMigrate 自动迁移表结构
	// 如果表不存在则创建，如果字段变更则更新结构
	err = db.AutoMigrate(
		&model.User{},      // 用户表
		&model.Group{},     // 群组表
		&model.GroupUser{}, // 群组成员关联表
	)
	if err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// buildDialector 按 driver 构建 GORM 方言
func buildDialector(conf *config.StorageConfig) (gorm.Dialector, error) {
	switch conf.Driver {
	case "sqlite-memory":
		return sqlite.Open(":memory:"), nil
	case "sqlite":
		zap.L().Warn("sqlite 仅建议用于开发环境", zap.String("path", conf.Path))
		return sqlite.Open(conf.Path), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			conf.Host, conf.Port, conf.User, conf.Password, conf.DatabaseName)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			conf.User, conf.Password, conf.Host, conf.Port, conf.DatabaseName)
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.Driver)
	}
}

// Repositories 基于当前连接创建 Repository 聚合
func (s *Store) Repositories() *repository.Repositories {
	return repository.NewRepositories(s.db)
}

// Close 关闭底层连接池
// main 中 defer 调用，保证进程退出时连接全部释放
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
