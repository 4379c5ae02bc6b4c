package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"storecrm/internal/auth"
	"storecrm/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const accountCtxKey = "account"

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// authMiddleware validates the bearer token and stores the account on the
// request. Token verification itself lives in the account service; this
// layer only maps failures to 401.
func authMiddleware(accounts AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		acct, err := accounts.LookupByToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(accountCtxKey, acct)
		c.Next()
	}
}

// requireOp consults the policy table for the operation and the caller's role.
func requireOp(op auth.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct := currentAccount(c)
		if acct == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		if !auth.Allowed(op, acct.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

func currentAccount(c *gin.Context) *domain.Account {
	v, ok := c.Get(accountCtxKey)
	if !ok {
		return nil
	}
	acct, _ := v.(*domain.Account)
	return acct
}

// respondError maps domain error kinds to HTTP statuses: validation failures
// to 400, uniqueness conflicts to 409, missing entities to 404.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
