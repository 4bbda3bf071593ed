package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/internal/store"
	"github.com/MKhiriev/go-pooja-site/internal/utils"
	"github.com/MKhiriev/go-pooja-site/internal/validators"
	"github.com/MKhiriev/go-pooja-site/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.FindUsersByRole(ctx, models.RoleUser)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// GetUser loads the user with id. A missing user is reported before a
// permission problem, so a non-admin can learn that an id does not exist.
func (s *userService) GetUser(ctx context.Context, requester models.TokenUser, id string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if err = CheckPermissions(requester, user.ID); err != nil {
		logger.FromContext(ctx).Warn().
			Str("requester", requester.UserID).
			Str("resource", user.ID).
			Msg("forbidden user lookup")
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, requester models.TokenUser, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" {
		return models.User{}, ErrMissingUserValues
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateUser(ctx, requester.UserID, req.Name, req.Email)
	if err != nil {
		log.Err(err).Str("user_id", requester.UserID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	user.Password = ""
	return user, nil
}

func (s *userService) UpdatePassword(ctx context.Context, requester models.TokenUser, req models.UpdatePasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.OldPassword == "" || req.NewPassword == "" {
		return ErrMissingPasswordValues
	}

	user, err := s.userRepository.FindUserByID(ctx, requester.UserID)
	if err != nil {
		return fmt.Errorf("user search by id failed: %w", err)
	}

	ok, err := utils.ComparePassword(user.Password, req.OldPassword)
	if err != nil {
		return err
	}
	if !ok {
		log.Debug().Str("user_id", user.ID).Msg("wrong old password")
		return ErrInvalidCredentials
	}

	if err = s.validator.Validate(ctx, req); err != nil {
		return err
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err = s.userRepository.UpdatePassword(ctx, user.ID, hash); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// CheckPermissions allows admins everything and everyone else only their
// own resources.
func CheckPermissions(requester models.TokenUser, resourceUserID string) error {
	if requester.IsAdmin() {
		return nil
	}
	if requester.UserID != "" && requester.UserID == resourceUserID {
		return nil
	}
	return ErrForbidden
}
