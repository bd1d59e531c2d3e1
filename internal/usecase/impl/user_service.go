package impl

import (
	"context"
	"log/slog"
	"time"

	"kix/config"
	deliverycontext "kix/internal/delivery/context"
	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	"kix/internal/domain/service"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	identityVerifier service.IdentityVerifier
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	IdentityVerifier service.IdentityVerifier
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		identityVerifier: params.IdentityVerifier,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new customer account and signs it in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting account registration", "email", input.Email)

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hashed,
		DisplayName:  input.DisplayName,
		Roles:        []entity.Role{entity.RoleCustomer},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewUserRepository().CreateUser(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, err
	}

	srv.log(ctx).Info("Account registered", "userId", user.ID)

	return srv.issueTokens(user)
}

// Login authenticates an email and password pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.log(ctx).Info("User logged in", "userId", user.ID)

	return srv.issueTokens(user)
}

// LoginWithIDToken verifies a federated ID token, provisioning an account on
// first sign-in, and signs the user in.
func (srv *userService) LoginWithIDToken(ctx context.Context, input *usecase.FederatedLoginInput) (*usecase.AuthOutput, error) {
	if srv.identityVerifier == nil {
		return nil, domainerrors.ErrIDTokenInvalid.WithDetails("federated sign-in is not configured")
	}

	verified, err := srv.identityVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Info("Federated ID token rejected", "error", err)

		return nil, domainerrors.ErrIDTokenInvalid
	}

	user, err := srv.userRepo.FindUserByEmail(ctx, verified.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find federated user")
		}

		user, err = srv.provisionFederatedUser(ctx, verified)
		if err != nil {
			return nil, err
		}
	}

	srv.log(ctx).Info("User logged in via federated identity", "userId", user.ID)

	return srv.issueTokens(user)
}

// provisionFederatedUser creates an account for a first-time federated
// sign-in. Federated accounts carry no password hash.
func (srv *userService) provisionFederatedUser(ctx context.Context, verified *service.FederatedUser) (*entity.User, error) {
	now := time.Now()
	user := &entity.User{
		ID:          uuid.New(),
		Email:       verified.Email,
		DisplayName: verified.Name,
		Roles:       []entity.Role{entity.RoleCustomer},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewUserRepository().CreateUser(ctx, user); err != nil {
			return errors.Wrap(err, "failed to provision federated user")
		}

		return nil
	})
	if err != nil {
		// A concurrent first sign-in may have provisioned the account.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return srv.userRepo.FindUserByEmail(ctx, verified.Email)
		}

		return nil, err
	}

	srv.log(ctx).Info("Federated account provisioned", "userId", user.ID)

	return user, nil
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.RoleStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// GetProfile retrieves the user's account profile.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile")
	}

	return user, nil
}

// SaveAddress stores the user's preferred shipping address.
func (srv *userService) SaveAddress(ctx context.Context, userID uuid.UUID, address *entity.ShippingAddress) error {
	if err := srv.userRepo.UpdateAddress(ctx, userID, address); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to save address")
	}

	return nil
}
