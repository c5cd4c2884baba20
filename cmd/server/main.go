package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/David-iadg/consult-ia/internal/app"
	"github.com/David-iadg/consult-ia/internal/config"
	"github.com/David-iadg/consult-ia/internal/logger"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
)

func main() {
	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	if isWeakSecret(cfg.Session.Secret) {
		if cfg.Server.Mode == "release" {
			stdLog.Fatalf("session secret 过弱或仍为默认值，请在生产环境中配置强随机密钥")
		}
		stdLog.Printf("警告: session secret 过弱或仍为默认值，建议在生产环境中更换")
	}
	if cfg.Server.Mode == "release" && cfg.Admin.PasswordHash == "" && cfg.Admin.Password == "password" {
		stdLog.Printf("警告: 种子管理员仍使用默认密码，请设置 admin.password_hash")
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + ansiBold + "Consult IA API" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "consult-ia-secret") {
		return true
	}
	return false
}
