package domain

// BankAccount account customers paying by transferencia send money to
type BankAccount struct {
	Alias  string `json:"alias"`
	CBU    string `json:"cbu"`
	Bank   string `json:"bank"`
	Holder string `json:"holder"`
}

// IsZero returns true when no account is configured
func (a BankAccount) IsZero() bool {
	return a.Alias == "" && a.CBU == ""
}
