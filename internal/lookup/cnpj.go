package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wedonate/pkg/types"
)

// CompanyRecord is the reshaped BrasilAPI CNPJ response.
type CompanyRecord struct {
	Name    string `json:"nome"`
	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	Address string `json:"endereco"`
	Status  string `json:"situacao_cadastral"`
}

type CNPJClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCNPJClient(baseURL string) *CNPJClient {
	return &CNPJClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type brasilAPIResponse struct {
	RazaoSocial                string `json:"razao_social"`
	Email                      string `json:"email"`
	DDDTelefone1               string `json:"ddd_telefone_1"`
	DDDTelefone2               string `json:"ddd_telefone_2"`
	Logradouro                 string `json:"logradouro"`
	Numero                     string `json:"numero"`
	Bairro                     string `json:"bairro"`
	Municipio                  string `json:"municipio"`
	UF                         string `json:"uf"`
	CEP                        string `json:"cep"`
	DescricaoSituacaoCadastral string `json:"descricao_situacao_cadastral"`
}

// Lookup fetches a company's registral data by its 14-digit CNPJ. Upstream
// failures keep their status code for passthrough.
func (c *CNPJClient) Lookup(ctx context.Context, cnpj string) (*CompanyRecord, error) {
	endpoint := fmt.Sprintf("%s/api/cnpj/v1/%s", c.baseURL, cnpj)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cnpj request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &types.ExternalServiceError{Service: "brasilapi", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &UpstreamStatusError{Service: "brasilapi", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var body brasilAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &types.ExternalServiceError{Service: "brasilapi", Err: fmt.Errorf("decode response: %w", err)}
	}

	phone := body.DDDTelefone1
	if phone == "" {
		phone = body.DDDTelefone2
	}

	address := fmt.Sprintf("%s, %s - %s, %s - %s. CEP: %s",
		body.Logradouro, body.Numero, body.Bairro, body.Municipio, body.UF, body.CEP)

	return &CompanyRecord{
		Name:    body.RazaoSocial,
		Email:   body.Email,
		Phone:   phone,
		Address: address,
		Status:  body.DescricaoSituacaoCadastral,
	}, nil
}
