package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcore/internal/models/request_models"
	"fitcore/internal/services"
	"fitcore/pkg/middleware"
	"fitcore/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register creates a new member account. Every new account starts on the
// user role with no subscription.
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.Register(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

func (a *AccountController) Profile(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	user, err := a.accountService.GetProfile(c.Request.Context(), identity.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "")
}

func (a *AccountController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	user, err := a.accountService.UpdateProfile(c.Request.Context(), identity.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "Profile updated")
}

func (a *AccountController) ChangePassword(c *gin.Context) {
	var req request_models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	if err := a.accountService.ChangePassword(c.Request.Context(), identity.ID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Password changed")
}

// ForgotPassword always answers the same way so callers cannot probe which
// emails are registered.
func (a *AccountController) ForgotPassword(c *gin.Context) {
	var req request_models.RequestForgotPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "If the email exists, a reset code has been sent")
}

func (a *AccountController) VerifyOtpToken(c *gin.Context) {
	var req request_models.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.VerifyOtpToken(c.Request.Context(), req.Token); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Code is valid")
}

func (a *AccountController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ResetPasswordWithOtp(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Password has been reset")
}

// ---- admin user management ----

func (a *AccountController) ListUsers(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	users, total, err := a.accountService.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(users, page, limit, total), "")
}

func (a *AccountController) ChangeRole(c *gin.Context) {
	var req request_models.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	if err := a.accountService.ChangeRole(c.Request.Context(), identity.ID, c.Param("id"), req.Role); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Role updated")
}

func (a *AccountController) DeleteUser(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if err := a.accountService.DeleteUser(c.Request.Context(), identity.ID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "User deleted")
}

func (a *AccountController) AssignCoach(c *gin.Context) {
	var req request_models.AssignCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	if err := a.accountService.AssignCoach(c.Request.Context(), identity.ID, c.Param("id"), req.CoachID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Coach assigned")
}

// MyClients lists the members assigned to the calling coach.
func (a *AccountController) MyClients(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	clients, err := a.accountService.ListClients(c.Request.Context(), identity.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, clients, "")
}
