package errors

var (
	ErrInvitationNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "INVITATION_NOT_FOUND",
		Message: "Invitation not found or already responded",
	}
	ErrInviteeNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "USER_NOT_FOUND",
		Message: "User not found",
	}
	ErrSelfShare = &DomainError{
		Kind:    KindConflict,
		Code:    "SELF_SHARE",
		Message: "You cannot share a wallet with yourself",
	}
	ErrAlreadyHasAccess = &DomainError{
		Kind:    KindConflict,
		Code:    "ACCESS_EXISTS",
		Message: "User already has access to this wallet",
	}
	ErrInvitationPending = &DomainError{
		Kind:    KindConflict,
		Code:    "INVITATION_PENDING",
		Message: "Invitation already sent to this user",
	}
	ErrAccessNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "ACCESS_NOT_FOUND",
		Message: "Access not found",
	}
)
