package config

import (
	"regexp"
	"strings"

	"github.com/babarot/goduration/internal/utils/log"
	"github.com/go-playground/validator/v10"
)

var sizePattern = regexp.MustCompile(`^\d+(B|KB|MB|GB)$`)

// validateSize validates the size format (e.g., "10MB", "1GB")
func validateSize(fl validator.FieldLevel) bool {
	return sizePattern.MatchString(strings.ToUpper(fl.Field().String()))
}

// validateLogLevel accepts the level names understood by the logger.
func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := log.ParseLevel(fl.Field().String())
	return err == nil
}
