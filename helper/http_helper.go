package helper

import (
	"errors"
	"net/http"

	"article-review-cms/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"go.uber.org/zap"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

const (
	textError = `error`
	textOk    = `ok`

	codeTypeValidation = `validationError`
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  interface{}
	Data     interface{}
	Code     int
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Logger     *zap.Logger
}

// NewHTTPHelper builds a helper with an english translator registered for
// every built-in validation tag.
func NewHTTPHelper(logger *zap.Logger) (*HTTPHelper, error) {
	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
		Logger:     logger,
	}, nil
}

// GetStatusCode ...
// Map a service error to its HTTP status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		notFound     models.ErrorNotFound
		forbidden    models.ErrorForbidden
		validation   models.ErrorValidation
		badRequest   models.ErrorBadRequest
		unauthorized models.ErrorUnauthorized
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &validation), errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (u *HTTPHelper) getCodeType(err error) string {
	var (
		notFound     models.ErrorNotFound
		forbidden    models.ErrorForbidden
		validation   models.ErrorValidation
		badRequest   models.ErrorBadRequest
		unauthorized models.ErrorUnauthorized
	)
	switch {
	case errors.As(err, &notFound):
		return `notFound`
	case errors.As(err, &forbidden):
		return `forbidden`
	case errors.As(err, &validation):
		return codeTypeValidation
	case errors.As(err, &badRequest):
		return `badRequest`
	case errors.As(err, &unauthorized):
		return `unAuthorized`
	default:
		return `internalServerError`
	}
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message interface{}, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send error response to consumers. Internal errors are logged and replaced
// with a generic message.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	code := u.GetStatusCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		if u.Logger != nil {
			u.Logger.Error("Request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
		}
		message = "Internal server error"
	}

	u.SendResponse(u.SetResponse(c, textError, message, u.EmptyJsonMap(), code, u.getCodeType(err)))
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.SendResponse(u.SetResponse(c, textError, message, u.EmptyJsonMap(), http.StatusBadRequest, `badRequest`))
}

// SendForbidden ...
func (u *HTTPHelper) SendForbidden(c *gin.Context) {
	u.SendError(c, models.Forbidden())
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	u.SendResponse(u.SetResponse(c, textError, errorResponse, u.EmptyJsonMap(), http.StatusBadRequest, codeTypeValidation))
}

// BindJSON decodes the request body into req and validates it, writing the
// error response itself. It reports whether the handler may continue.
func (u *HTTPHelper) BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		u.SendBadRequest(c, "Malformed request body")
		return false
	}
	if err := u.Validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			u.SendValidationError(c, validationErrors)
			return false
		}
		u.SendBadRequest(c, err.Error())
		return false
	}
	return true
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) {
	u.SendResponse(u.SetResponse(c, textOk, message, data, http.StatusOK, `success`))
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) {
	if s, ok := res.Message.(string); ok && len(s) == 0 {
		res.Message = `success`
	}

	res.C.JSON(res.Code, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}
