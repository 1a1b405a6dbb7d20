package errors

var (
	ErrWalletNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "WALLET_NOT_FOUND",
		Message: "Wallet not found or you do not have access",
	}
	ErrEntryNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "ENTRY_NOT_FOUND",
		Message: "Entry not found",
	}
	ErrEntryNotDeleted = &DomainError{
		Kind:    KindNotFound,
		Code:    "ENTRY_NOT_DELETED",
		Message: "Entry not found or not deleted",
	}
	ErrInsufficientRole = &DomainError{
		Kind:    KindPermission,
		Code:    "INSUFFICIENT_ROLE",
		Message: "You do not have permission to perform this action",
	}
	ErrBalanceOutOfRange = &DomainError{
		Kind:    KindValidation,
		Code:    "BALANCE_OUT_OF_RANGE",
		Message: "Wallet balance would exceed the allowed range",
	}
	ErrUnknownTag = &DomainError{
		Kind:    KindValidation,
		Code:    "UNKNOWN_TAG",
		Message: "One or more tags do not exist",
	}
)
