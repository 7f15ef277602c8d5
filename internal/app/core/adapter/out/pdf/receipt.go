package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/usecase"
)

const dateLayout = "02 Jan 2006"

// ReceiptRenderer 以 maroto 產生 GST 稅務發票 PDF
type ReceiptRenderer struct{}

func NewReceiptRenderer() *ReceiptRenderer {
	return &ReceiptRenderer{}
}

// Render 輸出單頁稅務發票
//
// 參數:
//
//	ctx: 上下文，已取消時不產生文件
//	r: 發票 + 客戶 + 帳戶 + 來源交易
//
// 回傳:
//
//	[]byte: PDF 內容
//	error: 產生失敗
func (p *ReceiptRenderer) Render(ctx context.Context, r domain.Receipt) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()
	m := maroto.New(cfg)

	addHeader(m, r)
	addParties(m, r)
	addLineItem(m, r)
	addTotals(m, r)
	addFooter(m, r)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate receipt %s: %w", r.Invoice.Number, err)
	}
	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, r domain.Receipt) {
	m.AddRow(30,
		col.New(7).Add(
			text.New(r.Bank.Name, props.Text{Size: 16, Style: fontstyle.Bold}),
			text.New(fmt.Sprintf("Branch: %s | IFSC: %s", r.Bank.BranchName, r.Bank.IFSC), props.Text{Top: 8, Size: 9}),
			text.New("GSTIN: "+r.Bank.GSTIN, props.Text{Top: 13, Size: 9}),
			text.New(r.Bank.Address, props.Text{Top: 18, Size: 9}),
		),
		col.New(5).Add(
			text.New("TAX INVOICE", props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Right}),
			text.New(r.Invoice.Number, props.Text{Top: 9, Style: fontstyle.Bold, Align: align.Right}),
			text.New("Date: "+r.Invoice.CreatedAt.Format(dateLayout), props.Text{Top: 14, Size: 9, Align: align.Right}),
			text.New("Status: "+string(r.Invoice.Status), props.Text{Top: 19, Size: 9, Align: align.Right}),
		),
	)
	m.AddRow(4, line.NewCol(12))
}

func addParties(m core.Maroto, r domain.Receipt) {
	m.AddRow(32,
		col.New(6).Add(
			text.New("CUSTOMER DETAILS", props.Text{Size: 8, Style: fontstyle.Bold}),
			text.New(r.Customer.Name, props.Text{Top: 5, Size: 12, Style: fontstyle.Bold}),
			text.New(r.Customer.Address, props.Text{Top: 11, Size: 9}),
			text.New(fmt.Sprintf("ID: %s | Mob: %s", r.Customer.ID, r.Customer.Phone), props.Text{Top: 20, Size: 9}),
		),
		col.New(6).Add(
			text.New("ACCOUNT DETAILS", props.Text{Size: 8, Style: fontstyle.Bold}),
			text.New("Account Type: "+string(r.Account.Type), props.Text{Top: 5, Size: 9}),
			text.New("Account Number: "+r.Account.MaskedNumber(), props.Text{Top: 10, Size: 9}),
			text.New("IFSC Code: "+r.Account.IFSC, props.Text{Top: 15, Size: 9}),
		),
	)
}

func addLineItem(m core.Maroto, r domain.Receipt) {
	header := props.Text{Size: 8, Style: fontstyle.Bold}
	headerRight := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	m.AddRow(8,
		text.NewCol(5, "DESCRIPTION", header),
		text.NewCol(1, "HSN/SAC", header),
		text.NewCol(2, "TAXABLE VALUE", headerRight),
		text.NewCol(2, fmt.Sprintf("GST (%s%%)", gstRate(r.Invoice)), headerRight),
		text.NewCol(2, "TOTAL (INR)", headerRight),
	)
	m.AddRow(2, line.NewCol(12))

	txRef := "N/A"
	if r.Transaction != nil {
		txRef = r.Transaction.ID.String()
	}
	cell := props.Text{Size: 9}
	cellRight := props.Text{Size: 9, Align: align.Right}
	m.AddRow(16,
		col.New(5).Add(
			text.New(r.LineDescription(), cell),
			text.New("Txn ID: "+txRef, props.Text{Top: 5, Size: 7}),
		),
		text.NewCol(1, r.Bank.SAC, cell),
		text.NewCol(2, money(r.Invoice.TaxableAmount()), cellRight),
		text.NewCol(2, money(gstAmount(r.Invoice)), cellRight),
		text.NewCol(2, money(r.Invoice.Amount), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(2, line.NewCol(12))
}

func addTotals(m core.Maroto, r domain.Receipt) {
	label := props.Text{Size: 9, Align: align.Right}
	value := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	m.AddRow(7,
		col.New(6),
		text.NewCol(4, "Taxable Amount", label),
		text.NewCol(2, money(r.Invoice.TaxableAmount()), value),
	)
	if tax := r.Invoice.Tax; tax != nil && tax.GSTAmount > 0 {
		half := tax.HalfRate().String()
		m.AddRow(7,
			col.New(6),
			text.NewCol(4, fmt.Sprintf("CGST @ %s%%", half), label),
			text.NewCol(2, money(tax.CGST()), value),
		)
		m.AddRow(7,
			col.New(6),
			text.NewCol(4, fmt.Sprintf("SGST @ %s%%", half), label),
			text.NewCol(2, money(tax.SGST()), value),
		)
	}
	m.AddRow(10,
		col.New(6),
		text.NewCol(4, "GRAND TOTAL", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Top: 2}),
		text.NewCol(2, money(r.Invoice.Amount), props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right, Top: 2}),
	)
}

func addFooter(m core.Maroto, r domain.Receipt) {
	verification := r.Invoice.ID
	if len(verification) > 12 {
		verification = verification[:12]
	}
	m.AddRow(35,
		code.NewQrCol(3, r.Invoice.Number, props.Rect{Percent: 90}),
		col.New(5).Add(
			text.New("LEGALLY COMPLIANT (GST)", props.Text{Top: 10, Size: 8, Style: fontstyle.Bold, Align: align.Center}),
			text.New("This is a system generated tax invoice and does not require a physical signature.",
				props.Text{Top: 15, Size: 7, Style: fontstyle.Italic, Align: align.Center}),
		),
		col.New(4).Add(
			text.New("Authorized Signatory", props.Text{Top: 20, Size: 10, Style: fontstyle.Italic, Align: align.Right}),
			text.New(r.Bank.Name+" - Branch Manager", props.Text{Top: 26, Size: 7, Align: align.Right}),
		),
	)
	m.AddRow(6, text.NewCol(12, "Ref: "+verification, props.Text{Size: 7}))
}

func money(minor int64) string {
	return "INR " + domain.FormatAmount(minor)
}

func gstRate(inv domain.Invoice) string {
	if inv.Tax == nil {
		return "0"
	}
	return inv.Tax.GSTRate.String()
}

func gstAmount(inv domain.Invoice) int64 {
	if inv.Tax == nil {
		return 0
	}
	return inv.Tax.GSTAmount
}

var _ usecase.ReceiptRenderer = (*ReceiptRenderer)(nil)
