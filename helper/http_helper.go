package helper

import (
	"errors"
	"net/http"
	"net/url"

	"redakce-cms/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

// HTTPHelper writes API responses in the envelope the desktop clients
// expect: {"ok":true, ...} on success, {"ok":false,"error":...} on
// failure. The web surface redirects with a flash instead.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// SendOK merges extra fields into an {ok:true} body.
func (u *HTTPHelper) SendOK(c *gin.Context, extra gin.H) {
	body := gin.H{"ok": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func (u *HTTPHelper) SendError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"ok": false, "error": message})
}

func (u *HTTPHelper) SendUnauthorized(c *gin.Context, message string) {
	u.SendError(c, http.StatusUnauthorized, message)
}

func (u *HTTPHelper) SendForbidden(c *gin.Context, message string) {
	u.SendError(c, http.StatusForbidden, message)
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.SendError(c, http.StatusBadRequest, message)
}

func (u *HTTPHelper) SendNotFound(c *gin.Context, message string) {
	u.SendError(c, http.StatusNotFound, message)
}

// SendServiceError maps the service sentinel errors onto the API error
// taxonomy. Unknown errors are reported as a bad request rather than
// leaking internals.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		u.SendUnauthorized(c, message)
	case errors.Is(err, models.ErrForbidden):
		u.SendForbidden(c, message)
	case errors.Is(err, models.ErrNotFound):
		u.SendNotFound(c, message)
	default:
		u.SendBadRequest(c, message)
	}
}

// SendValidationError reports binding failures per field. Messages go
// through the Translator when one is wired; the zero-value helper falls
// back to the validator's own messages.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	var errorTranslation validator.ValidationErrorsTranslations
	if u.Translator != nil {
		errorTranslation = validationErrors.Translate(u.Translator)
	}

	errorResponse := map[string][]string{}
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		msg := err.Translate(nil)
		if errorTranslation != nil {
			msg = errorTranslation[err.Namespace()]
		}
		errorResponse[errKey] = append(errorResponse[errKey], msg)
	}

	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": errorResponse})
}

// RedirectWithError sends the browser back with the localized message
// as a flash query, standing in for the rendered error template.
func (u *HTTPHelper) RedirectWithError(c *gin.Context, target, message string) {
	c.Redirect(http.StatusSeeOther, target+"?error="+url.QueryEscape(message))
}

func (u *HTTPHelper) Redirect(c *gin.Context, target string) {
	c.Redirect(http.StatusSeeOther, target)
}
