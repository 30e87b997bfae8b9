package controllers

import (
	"errors"
	"net/http"

	"github.com/Prashant8008/Fitness-Ai/middlewares"
	"github.com/Prashant8008/Fitness-Ai/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

type registerForm struct {
	PhoneNumber     string `form:"phone_number" json:"phone_number" binding:"required"`
	Email           string `form:"email" json:"email"`
	FirstName       string `form:"first_name" json:"first_name"`
	LastName        string `form:"last_name" json:"last_name"`
	Password        string `form:"password" json:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required"`
}

type loginForm struct {
	PhoneNumber string `form:"phone_number" json:"phone_number" binding:"required"`
	Password    string `form:"password" json:"password" binding:"required"`
}

func (ac *AuthController) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (ac *AuthController) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{"Error": "Please fill in all required fields.", "Form": form})
		return
	}

	_, err := ac.Auth.Register(services.RegisterInput{
		PhoneNumber:     form.PhoneNumber,
		Email:           form.Email,
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
	})
	if err != nil {
		status := http.StatusBadRequest
		if !isValidationError(err) {
			status = http.StatusInternalServerError
		}
		c.HTML(status, "register.html", gin.H{"Error": err.Error(), "Form": form})
		return
	}

	// Redirect so a browser refresh does not re-post the form.
	c.Redirect(http.StatusFound, "/login")
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (ac *AuthController) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": "Please enter your phone number and password."})
		return
	}

	_, token, err := ac.Auth.Authenticate(form.PhoneNumber, form.Password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "Invalid phone number or password. Please try again."})
		return
	}

	c.SetCookie(middlewares.AuthCookie, token, 72*3600, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middlewares.AuthCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

// RegisterAPI is the JSON variant used by the mobile client.
func (ac *AuthController) RegisterAPI(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.Auth.Register(services.RegisterInput{
		PhoneNumber:     form.PhoneNumber,
		Email:           form.Email,
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
	})
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "message": "registration successful"})
}

func (ac *AuthController) LoginAPI(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, token, err := ac.Auth.Authenticate(form.PhoneNumber, form.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid phone number or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrDuplicateIdentity) ||
		errors.Is(err, services.ErrWeakPassword) ||
		errors.Is(err, services.ErrPasswordMismatch) ||
		errors.Is(err, services.ErrOutOfRange)
}
