package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Report validation failures under the form field names clients submit.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	}
}

type InvoiceForm struct {
	CustomerID uint    `form:"customerId" json:"customerId" binding:"required,gt=0"`
	Amount     float64 `form:"amount" json:"amount" binding:"required,gt=0,lte=90000000000000"`
	Status     string  `form:"status" json:"status" binding:"required,oneof=pending paid"`
}

type CustomerForm struct {
	Name     string `form:"name" json:"name" binding:"required,max=255"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	UUID     string `form:"uuid" json:"uuid" binding:"omitempty,uuid"`
	ImageURL string `form:"image_url" json:"image_url" binding:"max=255"`
}

// normalizedUUID returns the submitted uuid in canonical form, or a new one
// when the field was left empty.
func (f CustomerForm) normalizedUUID() string {
	if f.UUID == "" {
		return uuid.NewString()
	}
	if id, err := uuid.Parse(f.UUID); err == nil {
		return id.String()
	}
	return f.UUID
}

type LoginForm struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// fieldErrors turns binding errors into a field -> message map.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = validationMessage(fe)
		}
		return out
	}
	out["form"] = err.Error()
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid uuid"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}

// bindForm binds the request body and answers 422 when it does not validate.
func bindForm(c *gin.Context, form any, message string) bool {
	if err := c.ShouldBind(form); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error":  message,
			"fields": fieldErrors(err),
		})
		return false
	}
	return true
}
