package profile

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ffreemt/claude-code-env-manager/internal/claude"
)

// Name and description limits.
const (
	MaxNameLength        = 50
	MaxDescriptionLength = 500
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	modelRe = regexp.MustCompile(`^[a-zA-Z0-9_.\-/]+$`)
)

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ValidateName enforces the profile name rules: 1-50 characters drawn from
// letters, digits, hyphen, and underscore, not starting or ending with a
// hyphen or underscore.
func ValidateName(name string) error {
	if name == "" {
		return validationErrorf("profile name is required")
	}
	if len(name) > MaxNameLength {
		return validationErrorf("profile name must be %d characters or less", MaxNameLength)
	}
	if !nameRe.MatchString(name) {
		return validationErrorf("profile name can only contain letters, numbers, hyphens, and underscores")
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, "_") ||
		strings.HasSuffix(name, "-") || strings.HasSuffix(name, "_") {
		return validationErrorf("profile name cannot start or end with hyphen or underscore")
	}
	return nil
}

// ValidateEnv validates profile environment variables. In full mode all four
// managed keys must be present, non-empty, and individually valid. In
// partial mode only the provided keys are checked: each must be non-empty,
// and the managed keys must be individually valid when present.
func ValidateEnv(vars map[string]string, partial bool) error {
	if len(vars) == 0 {
		return validationErrorf("environment variables are required")
	}

	if partial {
		for key, value := range vars {
			if value == "" {
				return validationErrorf("environment variable %q cannot be empty", key)
			}
			switch key {
			case claude.EnvAPIKey:
				if err := validateAPIKey(value); err != nil {
					return err
				}
			case claude.EnvBaseURL:
				if err := validateBaseURL(value); err != nil {
					return err
				}
			case claude.EnvModel, claude.EnvFastModel:
				if err := validateModelName(value); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, key := range claude.RequiredEnvKeys() {
		value, ok := vars[key]
		if !ok {
			return validationErrorf("required environment variable %q is missing", key)
		}
		if value == "" {
			return validationErrorf("environment variable %q cannot be empty", key)
		}
	}

	if err := validateAPIKey(vars[claude.EnvAPIKey]); err != nil {
		return err
	}
	if err := validateBaseURL(vars[claude.EnvBaseURL]); err != nil {
		return err
	}
	if err := validateModelName(vars[claude.EnvModel]); err != nil {
		return err
	}
	return validateModelName(vars[claude.EnvFastModel])
}

// validateAPIKey checks the provider key shape. Real keys are much longer;
// the 5-character floor keeps test fixtures usable.
func validateAPIKey(key string) error {
	if key == "" {
		return validationErrorf("API key is required")
	}
	if !strings.HasPrefix(key, "sk-") {
		return validationErrorf("API key must start with \"sk-\"")
	}
	if len(key) < 5 {
		return validationErrorf("API key appears to be too short (minimum 5 characters)")
	}
	return nil
}

// validateBaseURL requires an absolute http or https URL.
func validateBaseURL(raw string) error {
	if raw == "" {
		return validationErrorf("base URL is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return validationErrorf("base URL must be a valid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return validationErrorf("base URL must use HTTP or HTTPS")
	}
	return nil
}

// validateModelName accepts names like claude-3-5-sonnet-20241022 and
// provider-prefixed ones like zai-org/GLM-4.5.
func validateModelName(model string) error {
	if model == "" {
		return validationErrorf("model name is required")
	}
	if !modelRe.MatchString(model) {
		return validationErrorf("invalid model name format")
	}
	return nil
}

// ValidateDescription enforces the description length limit.
func ValidateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return validationErrorf("description must be %d characters or less", MaxDescriptionLength)
	}
	return nil
}
