package main

import (
	"flag"

	"github.com/David-iadg/consult-ia/internal/config"
	"github.com/David-iadg/consult-ia/internal/constants"
	"github.com/David-iadg/consult-ia/internal/logger"
	"github.com/David-iadg/consult-ia/internal/models"
	"github.com/David-iadg/consult-ia/internal/provider"
	"github.com/David-iadg/consult-ia/internal/seed"
)

func main() {
	var reset bool
	flag.BoolVar(&reset, "reset", false, "清空内容表后重新写入示例数据（仅 SQL 存储）")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	debug := cfg.Server.Mode == "debug"
	switch cfg.Store.Driver {
	case constants.StoreDriverSQLite, constants.StoreDriverPostgres:
		if reset {
			db, err := models.OpenDB(cfg.Store.Driver, cfg.Store.DSN, models.DBPoolConfig{}, debug)
			if err != nil {
				stdLog.Fatalf("Failed to connect database: %v", err)
			}
			if err := models.DropContentTables(db); err != nil {
				stdLog.Fatalf("Failed to reset tables: %v", err)
			}
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
			logger.Infow("seed_tables_reset", "driver", cfg.Store.Driver)
		}
	default:
		// 内存存储随进程结束丢失，这里仅用于校验示例数据
		stdLog.Printf("store.driver=%q 不落盘，示例数据仅在本进程内有效", cfg.Store.Driver)
	}

	store, err := provider.OpenStore(&cfg.Store, debug)
	if err != nil {
		stdLog.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	result, err := seed.Run(store, seed.Options{
		AdminUsername:     cfg.Admin.Username,
		AdminPassword:     cfg.Admin.Password,
		AdminPasswordHash: cfg.Admin.PasswordHash,
	})
	if err != nil {
		stdLog.Fatalf("Failed to seed store: %v", err)
	}
	stdLog.Printf("Seed completed: users=%d posts=%d applications=%d chatbot_qa=%d",
		result.Users, result.Posts, result.Applications, result.ChatbotQas)
}
