// Package payment adapta provedores de pagamento externos ao porto
// checkout.PaymentGateway.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nutallis/nutallis-api/internal/application/checkout"
)

var _ checkout.PaymentGateway = (*Gateway)(nil)

// Gateway cliente REST do provedor de pagamento (Pix e cartão).
// Com baseURL vazio opera em modo sandbox: aprova toda cobrança sem chamada
// de rede, útil em desenvolvimento e testes de integração.
type Gateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewGateway constrói o adaptador.
func NewGateway(baseURL, apiKey string) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ── Estruturas do protocolo do provedor ───────────────────────────────────────

type chargeRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Method      string `json:"method"`
}

type chargeResponse struct {
	Status        string `json:"status"` // approved | rejected
	TransactionID string `json:"transaction_id"`
	Reason        string `json:"reason,omitempty"`
}

// Charge cobra o valor no provedor. Recusa não é erro: volta em
// PaymentResult.Approved=false com o motivo do provedor.
func (g *Gateway) Charge(ctx context.Context, amountCents int64, method string) (*checkout.PaymentResult, error) {
	if g.baseURL == "" {
		// Sandbox: aprova localmente.
		return &checkout.PaymentResult{
			Approved:      true,
			TransactionID: "sandbox-" + uuid.New().String(),
		}, nil
	}

	body, err := json.Marshal(chargeRequest{
		AmountCents: amountCents,
		Currency:    "BRL",
		Method:      method,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal charge: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/charges", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("charge request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read charge response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("gateway HTTP %d: %s", resp.StatusCode, raw)
	}

	var out chargeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode charge response: %w", err)
	}

	return &checkout.PaymentResult{
		Approved:      out.Status == "approved",
		TransactionID: out.TransactionID,
		Reason:        out.Reason,
	}, nil
}
