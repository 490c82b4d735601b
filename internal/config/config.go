package config

import (
	"github.com/spf13/viper"

	"github.com/blues/cfe/internal/logger"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Campaign  CampaignConfig  `mapstructure:"campaign"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// CampaignConfig 众筹策略参数，启动时一次性注入引擎
type CampaignConfig struct {
	Timezone     string  `mapstructure:"timezone"`      // 截止日按此时区取日末
	ExpiringDays int     `mapstructure:"expiring_days"` // 临近截止提醒窗口（天）
	RecentDays   int     `mapstructure:"recent_days"`   // 新上线窗口（天）
	WaitDays     int     `mapstructure:"wait_days"`     // 待确认出资宽限期（天）
	PlatformFee  float64 `mapstructure:"platform_fee"`  // 平台费率
}

// SchedulerConfig 定时任务间隔（秒）
type SchedulerConfig struct {
	FinishInterval int `mapstructure:"finish_interval"`
	TotalInterval  int `mapstructure:"total_interval"`
	SweepInterval  int `mapstructure:"sweep_interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, stderr, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/cfe")

	// 设置默认值
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "crowdfunding")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("campaign.timezone", "Local")
	viper.SetDefault("campaign.expiring_days", 14)
	viper.SetDefault("campaign.recent_days", 7)
	viper.SetDefault("campaign.wait_days", 7)
	viper.SetDefault("campaign.platform_fee", 0.10)
	viper.SetDefault("scheduler.finish_interval", 60)
	viper.SetDefault("scheduler.total_interval", 300)
	viper.SetDefault("scheduler.sweep_interval", 3600)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	// 自动读取环境变量
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
