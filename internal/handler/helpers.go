package handler

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/EN-BAAK/Company-management-system-server/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

var clockTimeRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)(:[0-5]\d)?$`)

func init() {
	// "clocktime" validates HH:MM or HH:MM:SS time-of-day strings.
	_ = validate.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		return clockTimeRe.MatchString(fl.Field().String())
	})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Body("Invalid JSON: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

// bindQuery binds query-string parameters and validates them the same way.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Body("Invalid query parameters: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

func runValidation(c *gin.Context, req interface{}) bool {
	err := validate.Struct(req)
	if err == nil {
		return true
	}

	// Up to the first three human-readable messages, joined.
	var msgs []string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if len(msgs) == 3 {
				break
			}
			msgs = append(msgs, fieldMessage(fe))
		}
	}
	if len(msgs) == 0 {
		msgs = append(msgs, "Invalid request")
	}
	c.JSON(http.StatusBadRequest, apierror.Body(strings.Join(msgs, ", ")))
	return false
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a valid date", fe.Field())
	case "clocktime":
		return fmt.Sprintf("%s must be a valid time in HH:MM or HH:MM:SS format", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// fail translates a service error into the JSON envelope: handled errors
// carry their own status, everything else is logged and obscured as a 500.
func fail(c *gin.Context, err error) {
	var handled *apierror.Handled
	if errors.As(err, &handled) {
		c.JSON(handled.Status, apierror.Body(handled.Message))
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, apierror.Body("Internal server error"))
}

// idParam parses a UUID route parameter, writing a 400 when malformed.
func idParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Body(fmt.Sprintf("%s must be a valid id", name)))
		return uuid.Nil, false
	}
	return id, true
}
