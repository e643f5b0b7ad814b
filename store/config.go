package store

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/querybench/querybench/constants"
	"github.com/querybench/querybench/utils"
)

// Config carries the connection parameters for one Store. There is no
// ambient default; callers construct it explicitly or decode it from a
// config file.
type Config struct {
	Host     string            `json:"host" validate:"required"`
	Port     int               `json:"port"`
	Username string            `json:"username" validate:"required"`
	Password string            `json:"password"`
	Database string            `json:"database" validate:"required"`
	TLS      string            `json:"tls"`
	Params   map[string]string `json:"params"`
}

// Validate checks the configuration for any missing or invalid fields
func (c *Config) Validate() error {
	if strings.Contains(c.Host, "https") || strings.Contains(c.Host, "http") {
		return fmt.Errorf("host should not contain http or https: %s", c.Host)
	}

	c.Port = utils.Ternary(c.Port == 0, constants.DefaultMySQLPort, c.Port).(int)
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: must be between 1 and 65535")
	}

	return utils.Validate(c)
}

// URI builds the driver DSN for the configured backend.
func (c *Config) URI() string {
	cfg := mysql.NewConfig()
	cfg.User = c.Username
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	cfg.DBName = c.Database
	cfg.ParseTime = true
	if c.TLS != "" {
		cfg.TLSConfig = c.TLS
	}
	for key, value := range c.Params {
		if cfg.Params == nil {
			cfg.Params = map[string]string{}
		}
		cfg.Params[key] = value
	}
	return cfg.FormatDSN()
}

// ConnectionString returns a password-masked form for logging.
func (c *Config) ConnectionString() string {
	return fmt.Sprintf("mysql://%s:****@%s:%d/%s", c.Username, c.Host, c.Port, c.Database)
}
