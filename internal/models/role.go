package models

// Role is a caller's effective role on one wallet. The empty Role means no access.
type Role string

const (
	RoleNone    Role = ""
	RoleOwner   Role = "owner"
	RolePartner Role = "partner"
	RoleViewer  Role = "viewer"
)

// Operation names a wallet-scoped action gated by the permission matrix.
type Operation string

const (
	OpViewWallet   Operation = "wallet:view"
	OpPollWallet   Operation = "wallet:poll"
	OpExportWallet Operation = "wallet:export"
	OpEditWallet   Operation = "wallet:edit"
	OpDeleteWallet Operation = "wallet:delete"

	OpListEntries  Operation = "entry:list"
	OpCreateEntry  Operation = "entry:create"
	OpUpdateEntry  Operation = "entry:update"
	OpDeleteEntry  Operation = "entry:delete"
	OpRestoreEntry Operation = "entry:restore"
	OpPurgeEntry   Operation = "entry:purge"

	OpShareWallet  Operation = "access:share"
	OpListAccess   Operation = "access:list"
	OpRevokeAccess Operation = "access:revoke"
)

var (
	readers   = map[Role]bool{RoleOwner: true, RolePartner: true, RoleViewer: true}
	writers   = map[Role]bool{RoleOwner: true, RolePartner: true}
	ownerOnly = map[Role]bool{RoleOwner: true}
)

var permissionMatrix = map[Operation]map[Role]bool{
	OpViewWallet:   readers,
	OpPollWallet:   readers,
	OpExportWallet: readers,
	OpListEntries:  readers,

	OpCreateEntry:  writers,
	OpUpdateEntry:  writers,
	OpDeleteEntry:  writers,
	OpRestoreEntry: writers,
	OpPurgeEntry:   writers,

	OpEditWallet:   ownerOnly,
	OpDeleteWallet: ownerOnly,
	OpShareWallet:  ownerOnly,
	OpListAccess:   ownerOnly,
	OpRevokeAccess: ownerOnly,
}

// Can reports whether the role is allowed to perform op. Unknown operations are denied.
func (r Role) Can(op Operation) bool {
	return permissionMatrix[op][r]
}

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RolePartner, RoleViewer:
		return true
	}
	return false
}

// Grantable reports whether the role can be handed out through an invitation.
func (r Role) Grantable() bool {
	return r == RolePartner || r == RoleViewer
}
