package handler

import (
	"log/slog"
	"net/http"
	"time"

	"kix/internal/delivery/http/response"
	"kix/internal/domain/entity"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc        usecase.UserUsecase
	stateSync usecase.StateSyncUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, stateSync usecase.StateSyncUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:        uc,
		stateSync: stateSync,
		logger:    logger,
	}
}

type registerRequest struct {
	DisplayName string `json:"displayName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type federatedLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type saveAddressRequest struct {
	Address entity.ShippingAddress `json:"address" validate:"required"`
}

// userView is the account shape returned to clients. The password hash never
// leaves the server.
type userView struct {
	ID          uuid.UUID               `json:"id"`
	Email       string                  `json:"email"`
	DisplayName string                  `json:"displayName"`
	Roles       []string                `json:"roles"`
	Address     *entity.ShippingAddress `json:"address,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
}

type authView struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         userView `json:"user"`
	MergeStatus  string   `json:"mergeStatus,omitempty"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Roles:       user.RoleStrings(),
		Address:     user.Address,
		CreatedAt:   user.CreatedAt,
	}
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := h.signedInView(c, output)

	return response.Success(c, http.StatusCreated, view)
}

// Login handles the password login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := h.signedInView(c, output)

	return response.Success(c, http.StatusOK, view)
}

// FederatedLogin handles sign-in with a hosted identity provider's ID token.
func (h *UserHandler) FederatedLogin(c echo.Context) error {
	var req federatedLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid federated login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.LoginWithIDToken(c.Request().Context(), &usecase.FederatedLoginInput{
		IDToken: req.IDToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := h.signedInView(c, output)

	return response.Success(c, http.StatusOK, view)
}

// Logout reverts the device to a guest session. Tokens are stateless, so the
// server-side effect is only the identity transition for the device.
func (h *UserHandler) Logout(c echo.Context) error {
	if deviceID := currentDeviceID(c); deviceID != "" {
		if _, err := h.stateSync.HandleIdentityChange(c.Request().Context(), deviceID, entity.Anonymous()); err != nil {
			return errors.WithStack(err)
		}
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user))
}

// SaveAddress stores the user's preferred shipping address.
func (h *UserHandler) SaveAddress(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req saveAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.SaveAddress(c.Request().Context(), userID, &req.Address); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Address saved"})
}

// signedInView runs the device's sign-in transition and assembles the auth
// payload. A failed merge does not fail the sign-in; the device stays
// unmerged and the next sync retries it.
func (h *UserHandler) signedInView(c echo.Context, output *usecase.AuthOutput) authView {
	view := authView{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         toUserView(output.User),
	}

	deviceID := currentDeviceID(c)
	if deviceID == "" {
		return view
	}

	result, err := h.stateSync.HandleIdentityChange(c.Request().Context(), deviceID, entity.Authenticated(output.User.ID))
	switch {
	case err != nil:
		h.logger.Warn("Sign-in state merge failed",
			slog.String("device_id", deviceID),
			slog.Any("error", err),
		)
		view.MergeStatus = "failed"
	case result.Merged:
		view.MergeStatus = "merged"
	default:
		view.MergeStatus = "none"
	}

	return view
}
