package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidObjectID reports whether raw is a well-formed Mongo ObjectID
// (24 hex characters). Pure shape check, never touches storage. Handlers
// run it before every lookup to tell a malformed id (400) apart from a
// well-formed id with no document behind it (404).
func IsValidObjectID(raw string) bool {
	_, err := primitive.ObjectIDFromHex(raw)
	return err == nil
}

func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("objectid", ValidateObjectIDRule)
	}
}

func ValidateObjectIDRule(fl validator.FieldLevel) bool {
	return IsValidObjectID(fl.Field().String())
}
