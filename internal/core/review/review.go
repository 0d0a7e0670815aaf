package review

// Review is a single reader-submitted review of a catalog entry.
//
// ItemName is denormalized at submission time so the ledger can render
// without a catalog lookup, even after the entry is deleted.
type Review struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	Date     string `json:"date"`
}
