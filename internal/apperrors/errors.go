package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidCurrencyCode indicates a currency code with the wrong shape
// (not three uppercase letters, or not X?? for private-use registration).
var ErrInvalidCurrencyCode = errors.New("invalid currency code")

// ErrUnknownCurrency indicates a well-formed code with no matching record in
// either the built-in dataset or the private registry.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrCurrencyAlreadyDefined indicates a registration attempt for a code that
// already resolves, either as a built-in ISO currency or a registered
// private-use currency.
var ErrCurrencyAlreadyDefined = errors.New("currency already defined")

// ErrMissingRequiredOption indicates a registration without a name or digits.
var ErrMissingRequiredOption = errors.New("missing required option")

// ErrCurrencyNotSaved indicates the registry write failed at the
// infrastructure level (e.g. registry not initialized). Distinct from
// ErrCurrencyAlreadyDefined so callers can tell a wiring fault from a
// logical duplicate.
var ErrCurrencyNotSaved = errors.New("currency not saved")

// ErrUnknownLocale indicates a locale with no dataset backing it.
var ErrUnknownLocale = errors.New("unknown locale")
