// Package pdf implementa a geração do comprovante de pedido em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Loja  │  N° Pedido + Data                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + e-mail                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Peso | Produto | Preço/kg | Valor                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: método de pagamento / TOTAL PAGO                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: aviso do comprovante                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/nutallis/nutallis-api/internal/application/checkout"
	"github.com/nutallis/nutallis-api/internal/domain/entity"
	"github.com/nutallis/nutallis-api/pkg/currency"
)

var _ checkout.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 121, Green: 85, Blue: 61} // marrom castanha
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa checkout.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	storeName string
}

// NewMarotoReceiptGenerator constrói o gerador.
func NewMarotoReceiptGenerator(storeName string) *MarotoReceiptGenerator {
	if storeName == "" {
		storeName = "Nutallis"
	}
	return &MarotoReceiptGenerator{storeName: storeName}
}

// GenerateReceipt gera o PDF do comprovante e devolve os bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(
	_ context.Context,
	order *entity.Order,
	items []*entity.OrderItem,
	customer *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprovante de Pedido", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: loja (esq) e nº do pedido + data (dir).
func headerRow(storeName string, order *entity.Order) core.Row {
	data := order.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Castanhas e grãos selecionados", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROVANTE DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.ID, props.Text{
				Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: dados do cliente.
func customerRow(customer *entity.User) core.Row {
	name, email := "—", "—"
	if customer != nil {
		name, email = customer.Name, customer.Email
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s", name, email),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Peso", 2, align.Center),
		h("Produto", 5, align.Left),
		h("Preço/kg", 2, align.Right),
		h("Valor", 3, align.Right),
	)
}

// tableItemRows: uma linha por item do pedido.
func tableItemRows(items []*entity.OrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				formatWeight(it.WeightGrams),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				currency.FormatBRL(it.PricePerKgCents),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				currency.FormatBRL(it.PriceCents),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: método de pagamento e total, alinhados à direita.
func totalsRow(order *entity.Order) core.Row {
	return row.New(18).Add(
		col.New(4),
		col.New(4).Add(
			text.New("Pagamento:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			}),
			text.New("TOTAL PAGO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 7,
			}),
		),
		col.New(4).Add(
			text.New(paymentLabel(order.PaymentMethod), props.Text{
				Size: 9, Align: align.Right, Right: 1,
			}),
			text.New(currency.FormatBRL(order.TotalCents), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 7,
			}),
		),
	)
}

// footerRow: aviso do comprovante.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este comprovante confirma o pagamento do pedido. "+
				"Guarde-o para eventuais trocas ou devoluções.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatWeight exibe gramas como "250g" ou quilos como "1kg" / "1,5kg".
func formatWeight(grams int64) string {
	if grams < 1000 {
		return fmt.Sprintf("%dg", grams)
	}
	if grams%1000 == 0 {
		return fmt.Sprintf("%dkg", grams/1000)
	}
	return fmt.Sprintf("%d,%03dkg", grams/1000, grams%1000)
}

func paymentLabel(method string) string {
	switch method {
	case entity.PaymentMethodPix:
		return "Pix"
	case entity.PaymentMethodCreditCard:
		return "Cartão de crédito"
	case entity.PaymentMethodDebitCard:
		return "Cartão de débito"
	}
	return method
}
