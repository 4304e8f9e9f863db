package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrAssetNotFound indicates that an asset with the given ID does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrUnknownAssetType indicates that an asset carries a type tag no valuation
	// strategy exists for. It cannot be recovered from locally.
	ErrUnknownAssetType = errors.New("unknown asset type")

	// ErrNotSavingsAsset indicates that an interest rate was submitted for an asset
	// that is not a savings account.
	ErrNotSavingsAsset = errors.New("interest rates only apply to savings assets")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrAmountMismatch indicates that a transaction's total amount does not match
	// quantity times price per unit.
	ErrAmountMismatch = errors.New("total amount does not match quantity times price")
)

// Authentication errors.
var (
	// ErrAuthNotConfigured indicates that no dashboard password has been configured.
	ErrAuthNotConfigured = errors.New("server configuration error")

	// ErrInvalidPassword indicates that the submitted password is wrong.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidSession indicates a missing, tampered or expired session token.
	ErrInvalidSession = errors.New("session is invalid or expired")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToRetrieveAssets       = errors.New("failed to retrieve assets")
	ErrFailedToRetrieveAsset        = errors.New("failed to retrieve asset")
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToCreateTransaction    = errors.New("failed to create transaction")
	ErrFailedToRetrieveRates        = errors.New("failed to retrieve interest rates")
	ErrFailedToBuildDashboard       = errors.New("failed to build dashboard")
	ErrFailedToGetVersionInfo       = errors.New("failed to get version information")
)
