package service

import (
	"github.com/MKhiriev/go-pooja-site/internal/config"
	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/internal/store"
	"github.com/MKhiriev/go-pooja-site/internal/validators"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewUserValidator()

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService: NewUserService(storages.UserRepository, validator, logger),
	}
}
