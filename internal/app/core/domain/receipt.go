package domain

// BankIdentity 發票抬頭的銀行資訊
type BankIdentity struct {
	Name       string `yaml:"name" json:"name"`
	BranchName string `yaml:"branch_name" json:"branch_name"`
	IFSC       string `yaml:"ifsc" json:"ifsc"`
	GSTIN      string `yaml:"gstin" json:"gstin"`
	Address    string `yaml:"address" json:"address"`
	// SAC: 銀行服務的 HSN/SAC 代碼
	SAC string `yaml:"sac" json:"sac"`
}

// Receipt 匯出器所需的完整資料：發票 + 客戶 + 帳戶 + 來源交易
type Receipt struct {
	Bank     BankIdentity
	Invoice  Invoice
	Customer Customer
	Account  Account
	// Transaction 只有 Transaction 類型的發票才會有
	Transaction *Transaction
}

// LineDescription 明細列說明文字
func (r *Receipt) LineDescription() string {
	if r.Transaction != nil && r.Transaction.Description != "" {
		return r.Transaction.Description
	}
	return string(r.Invoice.Type) + " Transaction"
}
