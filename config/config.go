package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Kafka    KafkaConfig
	Defaults DefaultsConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

type KafkaConfig struct {
	Brokers    []string
	OrderTopic string
}

type DefaultsConfig struct {
	// ReviewerID backs the legacy approve/reject routes whose callers never
	// send an employeeId.
	ReviewerID uint `mapstructure:"reviewer_id"`

	ManagerName         string `mapstructure:"manager_name"`
	ManagerEmail        string `mapstructure:"manager_email"`
	PaymentHandlerName  string `mapstructure:"payment_handler_name"`
	PaymentHandlerEmail string `mapstructure:"payment_handler_email"`
	DeliveryName        string `mapstructure:"delivery_name"`
	DeliveryEmail       string `mapstructure:"delivery_email"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Enable reading from OS environment variables as fallback/override
	viper.AutomaticEnv()

	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing
	viper.BindEnv("DATABASE_URL")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("KAFKA_ORDER_TOPIC", "grocery.orders")
	viper.SetDefault("DEFAULT_REVIEWER_ID", 6)
	viper.SetDefault("SEED_MANAGER_NAME", "Store Manager")
	viper.SetDefault("SEED_MANAGER_EMAIL", "manager@grocery.local")
	viper.SetDefault("SEED_PAYMENT_HANDLER_NAME", "Payment Desk")
	viper.SetDefault("SEED_PAYMENT_HANDLER_EMAIL", "payments@grocery.local")
	viper.SetDefault("SEED_DELIVERY_NAME", "Delivery Rider")
	viper.SetDefault("SEED_DELIVERY_EMAIL", "delivery@grocery.local")

	var brokers []string
	if raw := viper.GetString("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
		Kafka: KafkaConfig{
			Brokers:    brokers,
			OrderTopic: viper.GetString("KAFKA_ORDER_TOPIC"),
		},
		Defaults: DefaultsConfig{
			ReviewerID:          viper.GetUint("DEFAULT_REVIEWER_ID"),
			ManagerName:         viper.GetString("SEED_MANAGER_NAME"),
			ManagerEmail:        viper.GetString("SEED_MANAGER_EMAIL"),
			PaymentHandlerName:  viper.GetString("SEED_PAYMENT_HANDLER_NAME"),
			PaymentHandlerEmail: viper.GetString("SEED_PAYMENT_HANDLER_EMAIL"),
			DeliveryName:        viper.GetString("SEED_DELIVERY_NAME"),
			DeliveryEmail:       viper.GetString("SEED_DELIVERY_EMAIL"),
		},
	}

	log.Printf("Configuration loaded successfully:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Server Env: %s", AppConfig.Server.Env)
	log.Printf("- Database Host: %s", AppConfig.Database.Host)
	log.Printf("- Database Name: %s", AppConfig.Database.Name)
	log.Printf("- Database URL: %s", func() string {
		if AppConfig.Database.URL != "" {
			return "SET"
		}
		return "NOT SET"
	}())
	log.Printf("- Kafka Brokers: %d configured", len(AppConfig.Kafka.Brokers))
	log.Printf("- Default Reviewer ID: %d", AppConfig.Defaults.ReviewerID)
}
