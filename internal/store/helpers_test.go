package store

import "github.com/mantrasuyog/EnrollmentSystem-sub001/internal/config"

func configForDSN(dsn string) config.ClientStorage {
	return config.ClientStorage{DB: config.ClientDB{DSN: dsn}}
}
