package domain

import "time"

// KYCStatus 客戶身分驗證狀態
type KYCStatus string

const (
	KYCPending  KYCStatus = "Pending"
	KYCVerified KYCStatus = "Verified"
	KYCRejected KYCStatus = "Rejected"
)

// NationalID 選填的身分證件號碼
type NationalID struct {
	Aadhaar string `json:"aadhaar,omitempty" yaml:"aadhaar"`
	PAN     string `json:"pan,omitempty" yaml:"pan"`
}

// Customer 持有帳戶的個人或法人，對 Ledger 而言唯讀
type Customer struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Phone      string      `json:"phone" yaml:"phone"`
	Email      string      `json:"email" yaml:"email"`
	Address    string      `json:"address" yaml:"address"`
	KYCStatus  KYCStatus   `json:"kyc_status" yaml:"kyc_status"`
	NationalID *NationalID `json:"national_id,omitempty" yaml:"national_id"`
	CreatedAt  time.Time   `json:"created_at" yaml:"created_at"`
}

// Clone 回傳深拷貝
func (c Customer) Clone() Customer {
	if c.NationalID != nil {
		id := *c.NationalID
		c.NationalID = &id
	}
	return c
}
