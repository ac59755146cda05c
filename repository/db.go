package repository

import (
	"fmt"
	"time"

	"salescrm/models"
	"salescrm/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB 全局数据库连接
var DB *gorm.DB

// InitDB 初始化PostgreSQL连接并执行迁移
func InitDB(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("获取底层连接失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping数据库失败: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Service{},
		&models.Inquiry{},
		&models.Proposal{},
	); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}

	DB = db
	utils.Logger.Info().Msg("已连接到PostgreSQL")
	return nil
}

// CloseDB 关闭数据库连接
func CloseDB() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		utils.Logger.Error().Err(err).Msg("获取底层连接失败")
		return
	}
	if err := sqlDB.Close(); err != nil {
		utils.Logger.Error().Err(err).Msg("关闭数据库连接失败")
		return
	}
	utils.Logger.Info().Msg("已断开数据库连接")
}
