package handlers

import (
	"net/http"

	"querystack/config"
	"querystack/helper"
	"querystack/models"
	"querystack/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{
		userService: userService,
		Helper:      h,
	}
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid user body")
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		config.Logger.WithField("fields", h.Helper.ValidationMessages(err)).Info("Invalid user body")
		c.String(http.StatusBadRequest, "Invalid user body")
		return
	}

	user, err := h.userService.SaveUser(req)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when saving user: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login responds with the safe user JSON; the session token travels in the
// Authorization response header so the body shape stays unchanged.
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid user body")
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		config.Logger.WithField("fields", h.Helper.ValidationMessages(err)).Info("Invalid user body")
		c.String(http.StatusBadRequest, "Invalid user body")
		return
	}

	user, token, err := h.userService.LoginUser(req)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when logging in: "+err.Error())
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid user body")
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		config.Logger.WithField("fields", h.Helper.ValidationMessages(err)).Info("Invalid user body")
		c.String(http.StatusBadRequest, "Invalid user body")
		return
	}

	user, err := h.userService.UpdateUser(req.Username, req.Password)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when updating user password: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	username := c.Param("username")

	user, err := h.userService.GetUserByUsername(username)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when getting user by username: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	username := c.Param("username")

	user, err := h.userService.DeleteUserByUsername(username)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when deleting user by username: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}

// Profile returns the account of the authenticated token's subject.
func (h *UserHandler) Profile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context")
		return
	}

	user, err := h.userService.GetUserByID(userID.(uint))
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when getting user by username: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}
