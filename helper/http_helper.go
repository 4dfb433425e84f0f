package helper

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validator "gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper bundles the request validator and the shared response helpers.
// Success responses in this API are bare entity JSON and validation failures
// are fixed text bodies, so there is no response envelope here.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
	}
}

// ValidateStruct runs the `validate` tags of a request body.
func (u *HTTPHelper) ValidateStruct(i interface{}) error {
	return u.Validate.Struct(i)
}

// ValidationMessages translates a validation error into field messages for
// logging.
func (u *HTTPHelper) ValidationMessages(err error) map[string]string {
	messages := map[string]string{}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return messages
	}
	for _, fieldErr := range validationErrors {
		messages[fieldErr.Field()] = fieldErr.Translate(u.Translator)
	}
	return messages
}

// ParseID parses a canonical decimal identifier.
func (u *HTTPHelper) ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}
