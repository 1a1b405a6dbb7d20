/*
Package wallet manages the lifecycle of wallets: creation, listing, edits,
change polling and the cascading deletes of a wallet or of a whole account.

Usage:

	svc := wallet.NewService(store, walletCache, recorder)

	// Create a wallet owned by userID
	w, err := svc.CreateWallet(ctx, userID, wallet.CreateWalletInput{Name: "Household"})

	// Owned wallets newest first, then shared ones
	views, err := svc.ListWallets(ctx, userID)

	// Remove a wallet with its entries, invitations and grants
	err = svc.DeleteWallet(ctx, w.ID, userID)

Cascades:

Both cascades run in one database transaction. When a step fails the
transaction is rolled back, the failure is handed to the audit recorder and
a store error is returned to the caller.

Cache Management:

Wallet lists are cached per user. Every operation that can change a list
invalidates the lists of all users who can see the affected wallets.
*/
package wallet
