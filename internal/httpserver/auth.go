package httpserver

import (
	"errors"
	"net/http"

	accountsvc "storecrm/internal/service/account"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
	Role         string `json:"role"`
}

func signupHandler(accounts AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in accountsvc.SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		acct, err := accounts.Signup(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, acct)
	}
}

func loginHandler(accounts AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		acct, access, refresh, err := accounts.Login(c.Request.Context(), in.Username, in.Password)
		if err != nil {
			if errors.Is(err, accountsvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tokenResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    "Bearer",
			ExpiresIn:    accounts.AccessTTLSeconds(),
			Role:         string(acct.Role),
		})
	}
}

func (h handlers) hello(c *gin.Context) {
	acct := currentAccount(c)
	c.JSON(http.StatusOK, gin.H{"message": "hello, " + acct.Username + "! you reached a protected endpoint."})
}

func (h handlers) adminDemo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "welcome, administrator. this resource is restricted."})
}
