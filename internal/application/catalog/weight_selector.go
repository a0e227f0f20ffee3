// Package catalog contém os casos de uso da vitrine: produtos, categorias e o
// seletor de peso com recálculo de preço debounced.
package catalog

import (
	"sync"
	"time"

	"github.com/nutallis/nutallis-api/internal/domain/pricing"
)

// DefaultDebounce é a janela de debounce do seletor de peso.
const DefaultDebounce = 240 * time.Millisecond

// PriceObserver recebe o par (peso, preço) resolvido após o debounce. O par é
// sempre internamente consistente: o preço foi calculado exatamente para
// aquele peso.
type PriceObserver func(weightGrams, priceCents int64)

// WeightSelector mantém o estado interativo de peso de um card de produto e
// colapsa mudanças rápidas numa única recomputação de preço (debounce de borda
// final). Cada nova mudança reinicia o timer; valores intermediários
// substituídos nunca geram cálculo nem notificação.
//
// Há no máximo um timer pendente por instância: agendar de novo cancela e
// substitui o anterior. O mutex serializa as chamadas dos callers com o
// goroutine do timer.
type WeightSelector struct {
	mu       sync.Mutex
	table    pricing.Table
	priceKg  int64
	delay    time.Duration
	observer PriceObserver

	timer   *time.Timer
	gen     uint64 // invalida timers substituídos que ainda cheguem a disparar
	pending int64  // último peso cru recebido, ainda não confirmado
	dirty   bool

	weight  int64 // último peso confirmado
	price   int64 // preço calculado para weight
	stopped bool
}

// NewWeightSelector cria um seletor para um produto. delay <= 0 desliga o
// debounce (toda mudança recalcula imediatamente). O peso inicial é confirmado
// de imediato, sem notificar o observer.
func NewWeightSelector(pricePerKgCents int64, table pricing.Table, initialWeightGrams int64, delay time.Duration, observer PriceObserver) *WeightSelector {
	w := clampWeight(initialWeightGrams)
	return &WeightSelector{
		table:    table,
		priceKg:  pricePerKgCents,
		delay:    delay,
		observer: observer,
		weight:   w,
		price:    table.PriceCents(pricePerKgCents, w),
	}
}

// SetWeight registra uma mudança de peso vinda da entrada livre. Pesos não
// positivos são grampeados em 1g antes de qualquer cálculo.
func (s *WeightSelector) SetWeight(weightGrams int64) {
	s.schedule(clampWeight(weightGrams))
}

// SelectPreset registra a escolha de um botão de preset. Passa pelo mesmo
// canal debounced da entrada livre, por consistência.
func (s *WeightSelector) SelectPreset(weightGrams int64) {
	s.schedule(clampWeight(weightGrams))
}

// Current devolve o último par (peso, preço) confirmado.
func (s *WeightSelector) Current() (weightGrams, priceCents int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weight, s.price
}

// Flush confirma imediatamente um peso pendente, sem esperar o timer.
// Sem pendência é um no-op.
func (s *WeightSelector) Flush() {
	s.mu.Lock()
	if s.stopped || !s.dirty {
		s.mu.Unlock()
		return
	}
	s.cancelTimerLocked()
	s.commitAndNotifyLocked()
}

// Stop cancela qualquer recomputação pendente e descarta mudanças futuras.
func (s *WeightSelector) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.cancelTimerLocked()
	s.dirty = false
}

func (s *WeightSelector) schedule(weightGrams int64) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.pending = weightGrams
	s.dirty = true
	s.cancelTimerLocked()

	if s.delay <= 0 {
		// janela zero ou negativa: dispara imediatamente
		s.commitAndNotifyLocked()
		return
	}

	s.gen++
	myGen := s.gen
	s.timer = time.AfterFunc(s.delay, func() { s.fire(myGen) })
	s.mu.Unlock()
}

// fire roda no goroutine do timer. Um timer substituído por uma mudança mais
// recente tem gen antiga e é ignorado.
func (s *WeightSelector) fire(gen uint64) {
	s.mu.Lock()
	if s.stopped || gen != s.gen || !s.dirty {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.commitAndNotifyLocked()
}

// commitAndNotifyLocked confirma o peso pendente, calcula o preço e notifica o
// observer fora do lock (o observer pode consultar Current sem deadlock).
// O caller deve segurar o mutex; esta função o libera.
func (s *WeightSelector) commitAndNotifyLocked() {
	s.weight = s.pending
	s.price = s.table.PriceCents(s.priceKg, s.pending)
	s.dirty = false
	weight, price := s.weight, s.price
	observer := s.observer
	s.mu.Unlock()

	if observer != nil {
		observer(weight, price)
	}
}

func (s *WeightSelector) cancelTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	// invalida qualquer disparo já em voo
	s.gen++
}

func clampWeight(g int64) int64 {
	if g < 1 {
		return 1
	}
	return g
}
