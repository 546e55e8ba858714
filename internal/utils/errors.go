package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken        = errors.New("INVALID_TOKEN")
	ErrInvalidOrganization = errors.New("INVALID_ORGANIZATION")
	ErrOrganizationExists  = errors.New("ORGANIZATION_EXISTS")
	ErrInvalidKeyType      = errors.New("INVALID_KEY_TYPE")
	ErrInvalidCountry      = errors.New("INVALID_COUNTRY")
	ErrInvalidPhoneNumber  = errors.New("INVALID_PHONE_NUMBER")
	ErrCountryDisabled     = errors.New("COUNTRY_DISABLED")
	ErrProductNotFound     = errors.New("PRODUCT_NOT_FOUND")
	ErrProductUnavailable  = errors.New("PRODUCT_UNAVAILABLE")
	ErrRuleNotFound        = errors.New("RULE_NOT_FOUND")
	ErrDiscountNotFound    = errors.New("DISCOUNT_NOT_FOUND")
	ErrUsageExhausted      = errors.New("DISCOUNT_USAGE_EXHAUSTED")
	ErrSettingsNotFound    = errors.New("SETTINGS_NOT_FOUND")
	ErrCatalogUnavailable  = errors.New("CATALOG_UNAVAILABLE")
)
