package checkout_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutallis/nutallis-api/internal/application/checkout"
	"github.com/nutallis/nutallis-api/internal/application/dto"
	"github.com/nutallis/nutallis-api/internal/domain"
	"github.com/nutallis/nutallis-api/internal/domain/entity"
	"github.com/nutallis/nutallis-api/internal/domain/pricing"
	"github.com/nutallis/nutallis-api/internal/domain/repository"
	"github.com/nutallis/nutallis-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória. O txRunner entrega os próprios repos do ambiente de teste;
// rollback é simulado descartando o estado quando fn devolve erro.
// ──────────────────────────────────────────────────────────────────────────────

type env struct {
	carts    *memCartRepo
	products *memProductRepo
	orders   *memOrderRepo
	finance  *memFinanceRepo
	users    *memUserRepo
}

type memCartRepo struct{ items []*entity.CartItem }

func (r *memCartRepo) Add(_ context.Context, item *entity.CartItem) error {
	r.items = append(r.items, item)
	return nil
}
func (r *memCartRepo) ListByUser(_ context.Context, userID string) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *memCartRepo) Remove(_ context.Context, _, _ string) error { return nil }
func (r *memCartRepo) Clear(_ context.Context, userID string) error {
	var kept []*entity.CartItem
	for _, it := range r.items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}

type memProductRepo struct{ stock map[string]int64 }

func (r *memProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (r *memProductRepo) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) GetBySlug(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (r *memProductRepo) AdjustStock(_ context.Context, id string, delta int64) error {
	if r.stock[id]+delta < 0 {
		return domain.ErrInsufficientStock
	}
	r.stock[id] += delta
	return nil
}
func (r *memProductRepo) ListActive(context.Context) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) List(context.Context, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Delete(context.Context, string) error { return nil }

type memOrderRepo struct {
	orders []*entity.Order
	items  map[string][]*entity.OrderItem
}

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order, items []*entity.OrderItem) error {
	r.orders = append(r.orders, order)
	if r.items == nil {
		r.items = map[string][]*entity.OrderItem{}
	}
	r.items[order.ID] = items
	return nil
}
func (r *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, []*entity.OrderItem, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, r.items[id], nil
		}
	}
	return nil, nil, nil
}
func (r *memOrderRepo) ListByUser(context.Context, string, int, int) ([]*entity.Order, error) {
	return nil, nil
}
func (r *memOrderRepo) List(context.Context, int, int) ([]*entity.Order, error) { return nil, nil }
func (r *memOrderRepo) UpdateStatus(context.Context, string, string) error      { return nil }
func (r *memOrderRepo) SalesByProductSince(context.Context, time.Time) ([]repository.ProductSales, error) {
	return nil, nil
}

type memFinanceRepo struct{ entries []*entity.FinanceEntry }

func (r *memFinanceRepo) AddEntry(_ context.Context, e *entity.FinanceEntry) error {
	r.entries = append(r.entries, e)
	return nil
}
func (r *memFinanceRepo) SumByBox(context.Context) (map[string]int64, error) {
	sums := map[string]int64{}
	for _, e := range r.entries {
		sums[e.BoxKey] += e.AmountCents
	}
	return sums, nil
}

type memUserRepo struct{}

func (memUserRepo) Create(context.Context, *entity.User) error { return nil }
func (memUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return &entity.User{ID: id, Name: "Maria Silva", Email: "maria@example.com"}, nil
}

type memTxRunner struct{ env *env }

func (t *memTxRunner) Run(ctx context.Context, fn func(
	repository.OrderRepository,
	repository.ProductRepository,
	repository.CartRepository,
	repository.FinanceRepository,
) error) error {
	return fn(t.env.orders, t.env.products, t.env.carts, t.env.finance)
}

type fakeGateway struct {
	approved bool
	charged  []int64
}

func (g *fakeGateway) Charge(_ context.Context, amountCents int64, _ string) (*checkout.PaymentResult, error) {
	g.charged = append(g.charged, amountCents)
	if !g.approved {
		return &checkout.PaymentResult{Approved: false, Reason: "saldo insuficiente"}, nil
	}
	return &checkout.PaymentResult{Approved: true, TransactionID: "tx-1"}, nil
}

type fakeReceipts struct{}

func (fakeReceipts) GenerateReceipt(context.Context, *entity.Order, []*entity.OrderItem, *entity.User) ([]byte, error) {
	return []byte("%PDF-1.7"), nil
}

func newEnv(stock map[string]int64) *env {
	return &env{
		carts:    &memCartRepo{},
		products: &memProductRepo{stock: stock},
		orders:   &memOrderRepo{},
		finance:  &memFinanceRepo{},
		users:    &memUserRepo{},
	}
}

func newCheckout(e *env, gw *fakeGateway) *checkout.UseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return checkout.NewUseCase(
		&memTxRunner{env: e}, e.carts, e.users, e.orders,
		gw, fakeReceipts{}, pricing.DefaultTable(), log,
	)
}

func addLine(e *env, userID, productID string, priceKg, weight int64) {
	e.carts.items = append(e.carts.items, &entity.CartItem{
		ID: productID + "-line", UserID: userID, ProductID: productID,
		Name: "Castanha-do-Pará", PricePerKgCents: priceKg, WeightGrams: weight,
		CreatedAt: time.Now(),
	})
}

// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_FechaPedidoEBaixaEstoque(t *testing.T) {
	e := newEnv(map[string]int64{"prod-1": 5000})
	gw := &fakeGateway{approved: true}
	uc := newCheckout(e, gw)

	addLine(e, "user-1", "prod-1", 8990, 1000)
	addLine(e, "user-1", "prod-1", 8990, 250)

	out, err := uc.Checkout(context.Background(), "user-1", dto.CheckoutRequest{PaymentMethod: "pix"})
	require.NoError(t, err)

	// 8091 (1kg com 10%) + 2248 (250g sem desconto)
	assert.EqualValues(t, 10339, out.TotalCents)
	assert.Equal(t, entity.OrderStatusPaid, out.Status)
	require.Len(t, out.Items, 2)

	// gateway cobrado exatamente uma vez pelo total
	require.Len(t, gw.charged, 1)
	assert.EqualValues(t, 10339, gw.charged[0])

	// estoque baixado em gramas
	assert.EqualValues(t, 5000-1250, e.products.stock["prod-1"])

	// venda lançada na caixinha e carrinho esvaziado
	sums, _ := e.finance.SumByBox(context.Background())
	assert.EqualValues(t, 10339, sums["vendas"])
	left, _ := e.carts.ListByUser(context.Background(), "user-1")
	assert.Empty(t, left)
}

func TestCheckout_PagamentoRecusadoNadaPersiste(t *testing.T) {
	e := newEnv(map[string]int64{"prod-1": 5000})
	gw := &fakeGateway{approved: false}
	uc := newCheckout(e, gw)
	addLine(e, "user-1", "prod-1", 8990, 1000)

	_, err := uc.Checkout(context.Background(), "user-1", dto.CheckoutRequest{PaymentMethod: "pix"})
	assert.ErrorIs(t, err, domain.ErrPaymentRejected)

	assert.Empty(t, e.orders.orders)
	assert.EqualValues(t, 5000, e.products.stock["prod-1"])
	left, _ := e.carts.ListByUser(context.Background(), "user-1")
	assert.Len(t, left, 1, "carrinho permanece intacto")
}

func TestCheckout_CarrinhoVazio(t *testing.T) {
	e := newEnv(map[string]int64{})
	uc := newCheckout(e, &fakeGateway{approved: true})

	_, err := uc.Checkout(context.Background(), "user-1", dto.CheckoutRequest{PaymentMethod: "pix"})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_MetodoInvalido(t *testing.T) {
	e := newEnv(map[string]int64{})
	uc := newCheckout(e, &fakeGateway{approved: true})

	_, err := uc.Checkout(context.Background(), "user-1", dto.CheckoutRequest{PaymentMethod: "boleto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_EstoqueInsuficiente(t *testing.T) {
	e := newEnv(map[string]int64{"prod-1": 100})
	uc := newCheckout(e, &fakeGateway{approved: true})
	addLine(e, "user-1", "prod-1", 8990, 1000)

	_, err := uc.Checkout(context.Background(), "user-1", dto.CheckoutRequest{PaymentMethod: "pix"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestReceiptPDF(t *testing.T) {
	e := newEnv(map[string]int64{"prod-1": 5000})
	uc := newCheckout(e, &fakeGateway{approved: true})
	addLine(e, "user-1", "prod-1", 8990, 500)

	out, err := uc.Checkout(context.Background(), "user-1", dto.CheckoutRequest{PaymentMethod: "credit_card"})
	require.NoError(t, err)

	pdf, err := uc.ReceiptPDF(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
