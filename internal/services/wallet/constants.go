package wallet

// Cascade steps, as recorded in audit entries.
const (
	stepLoadWallets       = "load owned wallets"
	stepListGrantees      = "list grantees"
	stepDeleteEntries     = "delete entries"
	stepDeleteInvitations = "delete invitations"
	stepDeleteAccess      = "delete access grants"
	stepDeleteWallets     = "delete wallets"
	stepDeleteUserAccess  = "delete user access grants"
	stepDeleteUserInvites = "delete user invitations"
	stepDeleteUser        = "delete user"
)
