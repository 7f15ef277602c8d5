package domain

import (
	"github.com/shopspring/decimal"
)

// TaxRoundingTolerance 應稅金額 + GST 與總額可容許的差距 (最小貨幣單位)
const TaxRoundingTolerance = 1

var hundred = decimal.NewFromInt(100)

// TaxBreakdown GST 拆分明細；nil 代表該筆交易不含 GST
type TaxBreakdown struct {
	TaxableAmount int64           `json:"taxable_amount"`
	GSTRate       decimal.Decimal `json:"gst_rate"`
	GSTAmount     int64           `json:"gst_amount"`
}

// InclusiveTaxBreakdown 將含稅金額依稅率拆成應稅金額與 GST
//
// 參數:
//
//	amount: 含稅總額 (最小貨幣單位)
//	ratePercent: GST 稅率百分比 (如 18)
//
// 回傳:
//
//	*TaxBreakdown: taxable + gst 恰等於 amount
func InclusiveTaxBreakdown(amount int64, ratePercent decimal.Decimal) *TaxBreakdown {
	taxable := decimal.NewFromInt(amount).
		Mul(hundred).
		Div(hundred.Add(ratePercent)).
		Round(0).
		IntPart()
	return &TaxBreakdown{
		TaxableAmount: taxable,
		GSTRate:       ratePercent,
		GSTAmount:     amount - taxable,
	}
}

// Validate 檢查明細與交易金額是否平衡
func (t *TaxBreakdown) Validate(amount int64) error {
	if t == nil {
		return nil
	}
	if t.TaxableAmount < 0 || t.GSTAmount < 0 {
		return NewError(ErrUnbalancedTaxBreakdown, "tax", "negative component")
	}
	if t.GSTRate.IsNegative() || t.GSTRate.GreaterThan(hundred) {
		return NewError(ErrUnbalancedTaxBreakdown, "tax.gst_rate", "rate %s out of range", t.GSTRate.String())
	}
	diff := t.TaxableAmount + t.GSTAmount - amount
	if diff < -TaxRoundingTolerance || diff > TaxRoundingTolerance {
		return NewError(ErrUnbalancedTaxBreakdown, "tax", "%s + %s != %s",
			FormatAmount(t.TaxableAmount), FormatAmount(t.GSTAmount), FormatAmount(amount))
	}
	return nil
}

// CGST 中央 GST (GST 的一半)
func (t *TaxBreakdown) CGST() int64 {
	return t.GSTAmount / 2
}

// SGST 邦 GST，奇數 paisa 歸 SGST
func (t *TaxBreakdown) SGST() int64 {
	return t.GSTAmount - t.CGST()
}

// HalfRate CGST/SGST 各自的稅率
func (t *TaxBreakdown) HalfRate() decimal.Decimal {
	return t.GSTRate.Div(decimal.NewFromInt(2))
}

// Clone 深拷貝，nil 安全
func (t *TaxBreakdown) Clone() *TaxBreakdown {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
