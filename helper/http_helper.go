package helper

import (
	"math"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

const (
	statusSuccess = `Success`
	statusFail    = `Fail`
)

// HTTPHelper owns the response envelope and the request-body validator.
// Every handler response goes through it so the {status, message, data}
// shape stays uniform across resources.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

var strongPwd = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*]{6,}$`)

func NewHTTPHelper() *HTTPHelper {
	v := validator.New()
	// Uppercase, digit and special character are each required; Go's regexp
	// has no lookahead so the classes are checked one by one.
	v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !strongPwd.MatchString(s) {
			return false
		}
		var upper, lower, digit, special bool
		for _, r := range s {
			switch {
			case r >= 'A' && r <= 'Z':
				upper = true
			case r >= 'a' && r <= 'z':
				lower = true
			case r >= '0' && r <= '9':
				digit = true
			default:
				special = true
			}
		}
		return upper && lower && digit && special
	})
	return &HTTPHelper{Validate: v}
}

type envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, envelope{statusSuccess, message, data})
}

// SendCreated ...
// Send created response to consumers.
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, envelope{statusSuccess, message, data})
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope{Status: statusFail, Message: message})
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, envelope{Status: statusFail, Message: message})
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, envelope{Status: statusFail, Message: message})
}

// SendServerError ...
// Send internal server error response to consumers. The underlying error is
// never echoed back.
func (u *HTTPHelper) SendServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, envelope{Status: statusFail, Message: "Server Error"})
}

// SendValidationError ...
// Send translated field errors to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	if u.Translator != nil {
		errorTranslation := validationErrors.Translate(u.Translator)
		for _, err := range validationErrors {
			errKey := Underscore(err.Field())
			errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
		}
	} else {
		for _, err := range validationErrors {
			errKey := Underscore(err.Field())
			errorResponse[errKey] = append(errorResponse[errKey], err.Tag())
		}
	}

	c.JSON(http.StatusBadRequest, envelope{Status: statusFail, Message: "Validation error", Data: errorResponse})
}

// Paging is the list envelope shared by the paginated reads.
type Paging struct {
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	NbHits     int         `json:"nbHits"`
	TotalPages int         `json:"totalPages"`
	HasMore    bool        `json:"hasMore"`
}

// SendPage sends one page of records with the derived page arithmetic.
func (u *HTTPHelper) SendPage(c *gin.Context, message string, data interface{}, nbHits int, page, size int, total int64) {
	totalPages := TotalPages(total, size)
	c.JSON(http.StatusOK, Paging{
		Status:     statusSuccess,
		Message:    message,
		Data:       data,
		NbHits:     nbHits,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	})
}

func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(size)))
}
