package lookup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOnlyDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"80.000-000", "80000000"},
		{"12.345.678/0001-95", "12345678000195"},
		{"abc", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := OnlyDigits(tt.in); got != tt.want {
			t.Errorf("OnlyDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestViaCEPLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/80000000/json/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"cep":"80000-000","logradouro":"Rua A","bairro":"Centro","localidade":"Curitiba","uf":"PR"}`))
	}))
	defer srv.Close()

	c := NewViaCEPClient(srv.URL)
	addr, err := c.Lookup(context.Background(), "80000000")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if addr.City != "Curitiba" || addr.State != "PR" || addr.Street != "Rua A" {
		t.Errorf("addr = %+v", addr)
	}
}

func TestViaCEPLookupUnknownCEP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	c := NewViaCEPClient(srv.URL)
	_, err := c.Lookup(context.Background(), "99999999")
	if !errors.Is(err, ErrCEPNotFound) {
		t.Errorf("Lookup() error = %v, want ErrCEPNotFound", err)
	}
}

func TestCNPJLookupPassesUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"CNPJ nao encontrado"}`))
	}))
	defer srv.Close()

	c := NewCNPJClient(srv.URL)
	_, err := c.Lookup(context.Background(), "12345678000195")

	var upstream *UpstreamStatusError
	if !errors.As(err, &upstream) {
		t.Fatalf("Lookup() error = %v, want UpstreamStatusError", err)
	}
	if upstream.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", upstream.StatusCode)
	}
}

func TestCNPJLookupReshapesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"razao_social":"ONG Exemplo","email":"ong@example.com","ddd_telefone_2":"4133334444",
			"logradouro":"Rua B","numero":"42","bairro":"Centro","municipio":"Curitiba","uf":"PR","cep":"80000000",
			"descricao_situacao_cadastral":"ATIVA"}`))
	}))
	defer srv.Close()

	c := NewCNPJClient(srv.URL)
	rec, err := c.Lookup(context.Background(), "12345678000195")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if rec.Phone != "4133334444" {
		t.Errorf("Phone = %q, want fallback to ddd_telefone_2", rec.Phone)
	}
	if rec.Address != "Rua B, 42 - Centro, Curitiba - PR. CEP: 80000000" {
		t.Errorf("Address = %q", rec.Address)
	}
	if rec.Status != "ATIVA" {
		t.Errorf("Status = %q", rec.Status)
	}
}
