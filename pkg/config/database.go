package config

import (
	dbutils "github.com/tendant/db-utils/db"
)

// DbConfig holds PostgreSQL connection settings.
type DbConfig struct {
	Host     string `env:"DONATION_PG_HOST" env-default:"localhost"`
	Port     uint16 `env:"DONATION_PG_PORT" env-default:"5432"`
	Database string `env:"DONATION_PG_DATABASE" env-default:"donation_db"`
	User     string `env:"DONATION_PG_USER" env-default:"donation"`
	Password string `env:"DONATION_PG_PASSWORD" env-default:"pwd"`
}

// ToDbConfig converts the config to a dbutils.DbConfig.
func (d DbConfig) ToDbConfig() dbutils.DbConfig {
	return dbutils.DbConfig{
		Host:     d.Host,
		Port:     d.Port,
		Database: d.Database,
		User:     d.User,
		Password: d.Password,
	}
}
