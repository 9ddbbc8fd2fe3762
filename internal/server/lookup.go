package server

import (
	"net/http"

	"wedonate/internal/lookup"

	"github.com/alexedwards/flow"
)

func (s *Service) handleCEPLookup(w http.ResponseWriter, r *http.Request) {
	cep := lookup.OnlyDigits(flow.Param(r.Context(), "cep"))
	if len(cep) != 8 {
		s.respondMessage(w, http.StatusBadRequest, "cep must have 8 digits")
		return
	}

	address, err := s.cep.Lookup(r.Context(), cep)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, address)
}

func (s *Service) handleCNPJLookup(w http.ResponseWriter, r *http.Request) {
	cnpj := lookup.OnlyDigits(flow.Param(r.Context(), "cnpj"))
	if len(cnpj) != 14 {
		s.respondMessage(w, http.StatusBadRequest, "cnpj must have 14 digits")
		return
	}

	company, err := s.cnpj.Lookup(r.Context(), cnpj)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, company)
}
