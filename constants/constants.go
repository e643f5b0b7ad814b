package constants

import "time"

const (
	DefaultMySQLPort      = 3306
	DefaultConnectTimeout = 10 * time.Second
	ConfigFolder          = "CONFIG_FOLDER"
)
