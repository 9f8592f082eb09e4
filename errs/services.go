package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Scraping Errors
var (
	ErrScrapeFailed        = errors.New("profile scrape failed")
	ErrScrapeTimeout       = errors.New("profile scrape timed out")
	ErrInsufficientContent = errors.New("insufficient scraped content")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// AI Provider Errors
var (
	ErrLLMUnavailable       = errors.New("AI provider unavailable")
	ErrInvalidAPIKey        = errors.New("invalid API key")
	ErrMalformedModelOutput = errors.New("malformed model output")
	ErrUnsupportedModel     = errors.New("unsupported model")
)

// Scraping Error Constructors

func NewScrapeError(profileURL string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrScrapeFailed,
		Details:    fmt.Sprintf("Failed to scrape %s", profileURL),
		Cause:      cause,
	}
}

func NewScrapeTimeoutError(profileURL string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusGatewayTimeout,
		err:        ErrScrapeTimeout,
		Details:    fmt.Sprintf("Scrape of %s did not finish in time", profileURL),
	}
}

// NewInsufficientContentError reports that the scraped corpus is too small to
// analyze. got is the character count actually collected.
func NewInsufficientContentError(got, min int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		err:        ErrInsufficientContent,
		Details:    fmt.Sprintf("Collected %d characters of content, need at least %d", got, min),
		Field:      "content",
	}
}

func NewUnsupportedPlatformError(platform string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnsupportedPlatform,
		Details:    fmt.Sprintf("Platform %q is not supported", platform),
		Field:      "platform",
	}
}

// AI Provider Error Constructors

func NewLLMError(provider string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrLLMUnavailable,
		Details:    fmt.Sprintf("Request to %s failed", provider),
		Cause:      cause,
	}
}

func NewInvalidAPIKeyError(provider string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrInvalidAPIKey,
		Details:    fmt.Sprintf("API key for %s is missing or invalid", provider),
	}
}

// NewModelOutputError reports a model answer that could not be parsed into the
// expected structure.
func NewModelOutputError(what string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrMalformedModelOutput,
		Details:    fmt.Sprintf("Model returned unparseable %s", what),
		Cause:      cause,
	}
}

func NewUnsupportedModelError(model string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnsupportedModel,
		Details:    fmt.Sprintf("Model %q is not supported", model),
		Field:      "model",
	}
}

// Scraping Error Type Checkers

func IsScrapeError(err error) bool {
	return errors.Is(err, ErrScrapeFailed)
}

func IsInsufficientContentError(err error) bool {
	return errors.Is(err, ErrInsufficientContent)
}

// AI Provider Error Type Checkers

func IsLLMError(err error) bool {
	return errors.Is(err, ErrLLMUnavailable)
}

func IsModelOutputError(err error) bool {
	return errors.Is(err, ErrMalformedModelOutput)
}
