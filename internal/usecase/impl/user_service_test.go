package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kix/config"
	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	"kix/internal/domain/service"
	mockRepo "kix/internal/mocks/repository"
	mockSvc "kix/internal/mocks/service"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	t                *testing.T
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	identityVerifier *mockSvc.MockIdentityVerifier
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	identityVerifier := mockSvc.NewMockIdentityVerifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		IdentityVerifier: identityVerifier,
		Config:           &config.Config{},
		Logger:           logger,
	})

	return userServiceFixtures{
		t:                t,
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		identityVerifier: identityVerifier,
	}
}

func (fx userServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func (fx userServiceFixtures) expectTokens() {
	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("[]string")).
		Return("access-token", "refresh-token", nil)
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		DisplayName: "Jamie Doe",
		Email:       "jamie@example.com",
		Password:    "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(fx.t)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		txUserRepo.EXPECT().
			CreateUser(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				assert.Equal(t, input.Email, user.Email)
				assert.Equal(t, "hashed_password", user.PasswordHash)
				assert.Equal(t, []entity.Role{entity.RoleCustomer}, user.Roles)
			}).
			Return(nil)
	})

	fx.expectTokens()

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, input.Email, output.User.Email)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	fx.onExecute(ctx, repository.ErrDuplicateEmail, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(fx.t)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		txUserRepo.EXPECT().CreateUser(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)
	})

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		DisplayName: "Jamie Doe",
		Email:       "jamie@example.com",
		Password:    "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "jamie@example.com",
		PasswordHash: "hashed_password",
		Roles:        []entity.Role{entity.RoleCustomer},
	}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.expectTokens()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jamie@example.com", PasswordHash: "hashed_password"}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_FederatedAccountHasNoPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jamie@example.com"} // No password hash.

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "anything"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_LoginWithIDToken_ExistingUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jamie@example.com", Roles: []entity.Role{entity.RoleCustomer}}

	fx.identityVerifier.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(&service.FederatedUser{ID: "sub-1", Email: user.Email, Name: "Jamie", EmailVerified: true}, nil)
	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.expectTokens()

	output, err := fx.service.LoginWithIDToken(ctx, &usecase.FederatedLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
}

func TestUserService_LoginWithIDToken_ProvisionsFirstSignIn(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.identityVerifier.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(&service.FederatedUser{ID: "sub-1", Email: "new@example.com", Name: "New User"}, nil)
	fx.userRepo.EXPECT().FindUserByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(fx.t)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		txUserRepo.EXPECT().
			CreateUser(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				assert.Equal(t, "new@example.com", user.Email)
				assert.Empty(t, user.PasswordHash)
			}).
			Return(nil)
	})

	fx.expectTokens()

	output, err := fx.service.LoginWithIDToken(ctx, &usecase.FederatedLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", output.User.Email)
}

func TestUserService_LoginWithIDToken_RejectedToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.identityVerifier.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, assert.AnError)

	_, err := fx.service.LoginWithIDToken(ctx, &usecase.FederatedLoginInput{IDToken: "bad-token"})

	assert.ErrorIs(t, err, domainerrors.ErrIDTokenInvalid)
}

func TestUserService_LoginWithIDToken_NotConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewUserService(UserServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     mockRepo.NewMockUserRepository(t),
		Hasher:       mockSvc.NewMockPasswordHasher(t),
		TokenService: mockSvc.NewMockTokenService(t),
		Config:       &config.Config{},
		Logger:       logger,
	})

	_, err := service.LoginWithIDToken(context.Background(), &usecase.FederatedLoginInput{IDToken: "id-token"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrIDTokenInvalid.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_SaveAddress_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	address := testShippingAddress()

	fx.userRepo.EXPECT().UpdateAddress(ctx, userID, &address).Return(nil)

	err := fx.service.SaveAddress(ctx, userID, &address)

	assert.NoError(t, err)
}
