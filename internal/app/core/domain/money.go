package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// 金額一律以 int64 最小貨幣單位 (paise) 儲存，小數點後 2 位
const (
	CurrencyScale    = 100
	currencyExponent = 2
)

// ParseAmount 將十進位字串 (如 "45000.00") 轉為最小貨幣單位
//
// 參數:
//
//	s: 金額字串
//
// 回傳:
//
//	int64: 最小貨幣單位金額
//	error: 非數字、非正數或超過 2 位小數時回傳 ErrInvalidAmount
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, NewError(ErrInvalidAmount, "amount", "%q is not a number", s)
	}
	if !d.IsPositive() {
		return 0, NewError(ErrInvalidAmount, "amount", "%s must be positive", d.String())
	}
	minor := d.Shift(currencyExponent)
	if !minor.IsInteger() {
		return 0, NewError(ErrInvalidAmount, "amount", "%s has more than %d fractional digits", d.String(), currencyExponent)
	}
	if minor.GreaterThan(decimal.NewFromInt(maxMinorUnits)) {
		return 0, NewError(ErrInvalidAmount, "amount", "%s is out of range", d.String())
	}
	return minor.IntPart(), nil
}

// MustParseAmount 用於常數與測試資料
func MustParseAmount(s string) int64 {
	v, err := ParseAmount(s)
	if err != nil {
		panic(fmt.Sprintf("domain: invalid amount %q: %v", s, err))
	}
	return v
}

// ParseSignedAmount 與 ParseAmount 相同但允許負數與零 (開戶餘額、貸款餘額)
func ParseSignedAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, NewError(ErrInvalidAmount, "balance", "%q is not a number", s)
	}
	minor := d.Shift(currencyExponent)
	if !minor.IsInteger() {
		return 0, NewError(ErrInvalidAmount, "balance", "%s has more than %d fractional digits", d.String(), currencyExponent)
	}
	if minor.Abs().GreaterThan(decimal.NewFromInt(maxMinorUnits)) {
		return 0, NewError(ErrInvalidAmount, "balance", "%s is out of range", d.String())
	}
	return minor.IntPart(), nil
}

// FormatAmount 將最小貨幣單位轉為固定 2 位小數字串
func FormatAmount(minor int64) string {
	return AmountDecimal(minor).StringFixed(currencyExponent)
}

// AmountDecimal 將最小貨幣單位轉為 decimal
func AmountDecimal(minor int64) decimal.Decimal {
	return decimal.New(minor, -currencyExponent)
}

// maxMinorUnits keeps any balance + amount sum inside int64.
const maxMinorUnits = int64(1) << 52
