package config

import (
	"log"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
把init config跟read config分開
init : 需要設置viper watch 與 onConfigChange
read : 一般讀寫 需要使用讀寫鎖
*/
var config_singleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ModulerName     string `mapstructure:"MODULER_NAME"`
	GatewayPort     string `mapstructure:"GATEWAY_PORT"`
	ProductPort     string `mapstructure:"PRODUCT_PORT"`
	UserPort        string `mapstructure:"USER_PORT"`
	OrderPort       string `mapstructure:"ORDER_PORT"`
	ServiceHost     string `mapstructure:"SERVICE_HOST"`
	DbName          string `mapstructure:"POSTGRES_DB"`
	DbHost          string `mapstructure:"POSTGRES_HOST"`
	DbPort          string `mapstructure:"POSTGRES_PORT"`
	DbUser          string `mapstructure:"POSTGRES_USER"`
	DbPas           string `mapstructure:"POSTGRES_PASSWORD"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPas        string `mapstructure:"REDIS_PASSWORD"`
	KafkaBrokers    string `mapstructure:"KAFKA_BROKERS"`
	OrderEventTopic string `mapstructure:"ORDER_EVENT_TOPIC"`
}

// KafkaBrokerList KAFKA_BROKERS使用逗號分隔多個broker
func (c *Config) KafkaBrokerList() []string {
	if c.KafkaBrokers == "" {
		return nil
	}
	return strings.Split(c.KafkaBrokers, ",")
}

func GetConfig() *Config {
	initConfig()
	config_singleton.mu.RLock()
	defer config_singleton.mu.RUnlock()
	return config_singleton.Config
}

func initConfig() {
	if config_singleton == nil {
		muonce.Do(func() {
			config_singleton = &ConfigSingleTon{}
			if cf, err := loadConfig(); err == nil {
				config_singleton.Config = cf
			} else {
				log.Fatal("error read config")
			}
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				if cf, err := loadConfig(); err == nil {
					config_singleton.Config = cf
				} else {
					log.Panic("failed to reload config file")
				}
			})
		})
	}
}

/*
單純回傳錯誤 由外部決定要不要Fatal, 畢竟有可能有替代方案
找不到.env時只靠環境變數
*/
func loadConfig() (cf *Config, err error) {
	config_singleton.mu.Lock()
	defer config_singleton.mu.Unlock()

	cf = &Config{}
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("config file not loaded, using environment only: %v", err)
		}
		err = nil
	}

	err = viper.Unmarshal(cf)
	if err != nil {
		return
	}

	setDefaults(cf)
	return
}

func setDefaults(cf *Config) {
	if cf.GatewayPort == "" {
		cf.GatewayPort = "8080"
	}
	if cf.ProductPort == "" {
		cf.ProductPort = "8081"
	}
	if cf.UserPort == "" {
		cf.UserPort = "8082"
	}
	if cf.OrderPort == "" {
		cf.OrderPort = "8083"
	}
	if cf.ServiceHost == "" {
		cf.ServiceHost = "localhost"
	}
	if cf.OrderEventTopic == "" {
		cf.OrderEventTopic = "order.events"
	}
}
