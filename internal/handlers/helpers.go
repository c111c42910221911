// internal/handlers/helpers.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/ecom-backend/internal/i18n"
	"github.com/javajoker/ecom-backend/internal/services"
	"github.com/javajoker/ecom-backend/internal/utils"
)

// bindQuery binds the query string into req and validates it. On failure the
// response has been written and false is returned.
func bindQuery(c *gin.Context, req interface{}) bool {
	lang := utils.GetLangFromContext(c)

	if err := c.ShouldBindQuery(req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "query"), err.Error())
		return false
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}

	return true
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyInvalidID, name), nil)
		return 0, false
	}
	return id, true
}

// respondError maps a service error onto the response.
func respondError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, services.ErrInvalidPagination):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyInvalidPagination), err.Error())
	case errors.Is(err, services.ErrInvalidFilter):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyInvalidFilter), err.Error())
	default:
		entry := logrus.WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"request_id": utils.GetRequestIDFromContext(c),
		})
		var se *services.StorageError
		if errors.As(err, &se) {
			entry = entry.WithField("operation", se.Op).WithError(se.Err)
		} else {
			entry = entry.WithError(err)
		}
		entry.Error("Request failed")

		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
	}
}
