// Package i18n provides internationalization support for the composition service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyEmptyComposition indicates a submission or mutation that would
	// leave a dish without any ingredient.
	ErrKeyEmptyComposition = "error.composition.empty"
	// ErrKeyInvalidPickTarget indicates a malformed step/option reference.
	ErrKeyInvalidPickTarget = "error.composition.invalid_pick"
	// ErrKeyDishNotFound indicates the requested dish does not exist.
	ErrKeyDishNotFound = "error.dish_not_found"
	// ErrKeyMutationInFlight indicates another mutation for the same dish
	// is still being processed.
	ErrKeyMutationInFlight = "error.mutation_in_flight"
	// ErrKeyCatalogUnavailable indicates the customization catalog could
	// not be loaded.
	ErrKeyCatalogUnavailable = "error.catalog_unavailable"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyDishComposed indicates a successfully composed dish.
	SuccessKeyDishComposed = "success.dish_composed"
	// SuccessKeyPickMutated indicates a successfully applied pick mutation.
	SuccessKeyPickMutated = "success.pick_mutated"
)
