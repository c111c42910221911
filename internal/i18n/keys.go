// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess       = "success"
	KeyError         = "error"
	KeyInternalError = "error.internal"
	KeyWelcome       = "welcome"

	// Authentication
	KeyAuthRequired      = "auth.required"
	KeyAuthInvalidToken  = "auth.invalid_token"
	KeyAdminAccessDenied = "admin.access_denied"

	// Resources
	KeyProductNotFound  = "product.not_found"
	KeyCategoryNotFound = "category.not_found"
	KeyBrandNotFound    = "brand.not_found"
	KeyOrderNotFound    = "order.not_found"
	KeyCustomerNotFound = "customer.not_found"
	KeyRouteNotFound    = "route.not_found"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
	KeyInvalidID          = "validation.invalid_id"
	KeyInvalidFilter      = "validation.invalid_filter"
	KeyInvalidPagination  = "validation.invalid_pagination"
	KeySearchRequired     = "search.query_required"

	// Rate limiting
	KeyRateLimitExceeded = "rate_limit.exceeded"

	// Health
	KeyHealthOK            = "health.ok"
	KeyHealthDBUnavailable = "health.db_unavailable"
)
