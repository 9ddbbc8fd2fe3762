package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wedonate/pkg/types"
)

// PostalAddress is the reshaped ViaCEP response returned to clients.
type PostalAddress struct {
	CEP      string `json:"cep"`
	Street   string `json:"rua"`
	District string `json:"bairro"`
	City     string `json:"cidade"`
	State    string `json:"estado"`
}

type ViaCEPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewViaCEPClient(baseURL string) *ViaCEPClient {
	return &ViaCEPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type viaCEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// Lookup resolves an 8-digit CEP. A CEP the provider does not know yields
// ErrCEPNotFound; provider failures surface as ExternalServiceError with the
// upstream status attached.
func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (*PostalAddress, error) {
	endpoint := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create viacep request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &types.ExternalServiceError{Service: "viacep", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamStatusError{Service: "viacep", StatusCode: resp.StatusCode}
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &types.ExternalServiceError{Service: "viacep", Err: fmt.Errorf("decode response: %w", err)}
	}

	if body.Erro {
		return nil, ErrCEPNotFound
	}

	return &PostalAddress{
		CEP:      body.CEP,
		Street:   body.Logradouro,
		District: body.Bairro,
		City:     body.Localidade,
		State:    body.UF,
	}, nil
}
