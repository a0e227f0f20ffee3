package catalog_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutallis/nutallis-api/internal/application/catalog"
	"github.com/nutallis/nutallis-api/internal/domain/pricing"
)

// pair é um (peso, preço) notificado pelo seletor.
type pair struct {
	weight int64
	price  int64
}

// recorder acumula as notificações do seletor de forma thread-safe.
type recorder struct {
	mu    sync.Mutex
	calls []pair
}

func (r *recorder) observe(weight, price int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, pair{weight, price})
}

func (r *recorder) snapshot() []pair {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]pair, len(r.calls))
	copy(out, r.calls)
	return out
}

// Cinco mudanças rápidas dentro da janela viram exatamente uma recomputação,
// com o último valor.
func TestWeightSelector_DebounceColapsaMudancas(t *testing.T) {
	rec := &recorder{}
	sel := catalog.NewWeightSelector(8990, pricing.DefaultTable(), 250, 50*time.Millisecond, rec.observe)
	defer sel.Stop()

	for _, w := range []int64{110, 120, 400, 900, 1000} {
		sel.SetWeight(w)
		time.Sleep(2 * time.Millisecond)
	}

	// espera bem além da janela para o disparo final
	time.Sleep(300 * time.Millisecond)

	calls := rec.snapshot()
	require.Len(t, calls, 1, "5 mudanças rápidas devem gerar exatamente 1 recomputação")
	assert.EqualValues(t, 1000, calls[0].weight)
	assert.EqualValues(t, 8091, calls[0].price, "preço de 1kg com 10%% de desconto")

	w, p := sel.Current()
	assert.EqualValues(t, 1000, w)
	assert.EqualValues(t, 8091, p)
}

// Preset passa pelo mesmo canal debounced da entrada livre.
func TestWeightSelector_PresetDebounced(t *testing.T) {
	rec := &recorder{}
	sel := catalog.NewWeightSelector(8990, pricing.DefaultTable(), 250, 30*time.Millisecond, rec.observe)
	defer sel.Stop()

	sel.SelectPreset(500)
	assert.Empty(t, rec.snapshot(), "antes da janela não há notificação")

	time.Sleep(200 * time.Millisecond)
	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.EqualValues(t, 500, calls[0].weight)
	assert.EqualValues(t, 4270, calls[0].price)
}

// Janela zero dispara de forma síncrona.
func TestWeightSelector_JanelaZeroDisparaImediato(t *testing.T) {
	rec := &recorder{}
	sel := catalog.NewWeightSelector(8990, pricing.DefaultTable(), 250, 0, rec.observe)
	defer sel.Stop()

	sel.SetWeight(1000)
	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.EqualValues(t, 1000, calls[0].weight)
	assert.EqualValues(t, 8091, calls[0].price)
}

// Pesos não positivos são grampeados em 1g antes do cálculo.
func TestWeightSelector_GrampeiaPesoMinimo(t *testing.T) {
	rec := &recorder{}
	sel := catalog.NewWeightSelector(8990, pricing.DefaultTable(), 250, 0, rec.observe)
	defer sel.Stop()

	sel.SetWeight(-50)
	w, p := sel.Current()
	assert.EqualValues(t, 1, w)
	assert.EqualValues(t, 9, p) // 8990/1000 = 8.99 -> 9 centavos
}

// Stop cancela a recomputação pendente; nada é notificado depois.
func TestWeightSelector_StopCancelaPendencia(t *testing.T) {
	rec := &recorder{}
	sel := catalog.NewWeightSelector(8990, pricing.DefaultTable(), 250, 30*time.Millisecond, rec.observe)

	sel.SetWeight(1000)
	sel.Stop()

	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	// estado confirmado permanece o inicial
	w, _ := sel.Current()
	assert.EqualValues(t, 250, w)
}

// Flush confirma a pendência sem esperar o timer; o timer substituído não
// dispara uma segunda vez.
func TestWeightSelector_Flush(t *testing.T) {
	rec := &recorder{}
	sel := catalog.NewWeightSelector(8990, pricing.DefaultTable(), 250, 500*time.Millisecond, rec.observe)
	defer sel.Stop()

	sel.SetWeight(1000)
	sel.Flush()

	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.EqualValues(t, 1000, calls[0].weight)

	// Flush sem pendência é no-op
	sel.Flush()
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1)
}

// O par notificado é sempre consistente: preço calculado para aquele peso.
func TestWeightSelector_ParConsistente(t *testing.T) {
	rec := &recorder{}
	table := pricing.DefaultTable()
	sel := catalog.NewWeightSelector(8990, table, 250, 10*time.Millisecond, rec.observe)
	defer sel.Stop()

	for _, w := range []int64{100, 250, 500, 999, 1000, 1500} {
		sel.SetWeight(w)
		time.Sleep(60 * time.Millisecond)
	}

	for _, call := range rec.snapshot() {
		assert.Equal(t, table.PriceCents(8990, call.weight), call.price,
			"peso %dg notificado com preço inconsistente", call.weight)
	}
}
