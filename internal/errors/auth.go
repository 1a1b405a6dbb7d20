package errors

var (
	ErrInvalidCredentials = &DomainError{
		Kind:    KindAuthentication,
		Code:    "INVALID_CREDENTIALS",
		Message: "Invalid email or password",
	}
	ErrNotAuthenticated = &DomainError{
		Kind:    KindAuthentication,
		Code:    "UNAUTHENTICATED",
		Message: "Authentication required",
	}
	ErrSessionExpired = &DomainError{
		Kind:    KindAuthentication,
		Code:    "SESSION_EXPIRED",
		Message: "Session expired",
	}
	ErrEmailTaken = &DomainError{
		Kind:    KindConflict,
		Code:    "EMAIL_TAKEN",
		Message: "User with this email already exists",
	}
	ErrUserNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "USER_NOT_FOUND",
		Message: "User not found",
	}
)
