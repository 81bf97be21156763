package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// 存储配置
	StoreDriver         string `mapstructure:"STORE_DRIVER"`
	MongoURI            string `mapstructure:"MONGODB_URI"`
	DatabaseName        string `mapstructure:"DATABASE_NAME"`
	MongoTimeoutSeconds int    `mapstructure:"MONGO_TIMEOUT_SECONDS"`

	// Redis配置，REDIS_HOST 为空时不启用统计缓存
	RedisHost            string `mapstructure:"REDIS_HOST"`
	RedisPort            string `mapstructure:"REDIS_PORT"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisDB              int    `mapstructure:"REDIS_DB"`
	StatsCacheTTLSeconds int    `mapstructure:"STATS_CACHE_TTL_SECONDS"`

	// 日志与跨域
	LogDir           string `mapstructure:"LOG_DIR"`
	CORSAllowOrigins string `mapstructure:"CORS_ALLOW_ORIGINS"`
}

var defaults = map[string]interface{}{
	"ENVIRONMENT":             "development",
	"SERVER_PORT":             "8000",
	"STORE_DRIVER":            StoreDriverMongo,
	"MONGODB_URI":             "mongodb://localhost:27017",
	"DATABASE_NAME":           "emogo_db",
	"MONGO_TIMEOUT_SECONDS":   10,
	"REDIS_HOST":              "",
	"REDIS_PORT":              "6379",
	"REDIS_PASSWORD":          "",
	"REDIS_DB":                0,
	"STATS_CACHE_TTL_SECONDS": 30,
	"LOG_DIR":                 "logs",
	"CORS_ALLOW_ORIGINS":      "*",
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// 只有注册过的键才会被 AutomaticEnv 覆盖到 Unmarshal 结果里
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	err = config.Validate()
	return
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	switch c.StoreDriver {
	case StoreDriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required when STORE_DRIVER=%s", StoreDriverMongo)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	if c.DatabaseName == "" {
		return fmt.Errorf("DATABASE_NAME must not be empty")
	}
	if c.MongoTimeoutSeconds <= 0 {
		return fmt.Errorf("MONGO_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// MongoTimeout 返回驱动的连接和选主超时
func (c *Config) MongoTimeout() time.Duration {
	return time.Duration(c.MongoTimeoutSeconds) * time.Second
}

// StatsCacheTTL 返回统计缓存的过期时间
func (c *Config) StatsCacheTTL() time.Duration {
	return time.Duration(c.StatsCacheTTLSeconds) * time.Second
}

// RedisEnabled 是否配置了 Redis
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// GetRedisConnString 返回Redis连接字符串
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// AllowOrigins 解析逗号分隔的跨域来源
func (c *Config) AllowOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
