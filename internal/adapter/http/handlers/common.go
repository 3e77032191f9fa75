package handlers

import (
	"net/http"
	"strconv"

	"serviciosjt/internal/adapter/http/middleware"
	"serviciosjt/pkg"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

// mustCaller extracts the verified caller or writes a 401.
func mustCaller(c *gin.Context) (middleware.AuthUser, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return middleware.AuthUser{}, false
	}
	return user, true
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func limitQuery(c *gin.Context) int {
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
