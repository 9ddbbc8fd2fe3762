package server

import (
	"encoding/json"
	"net/http"

	"wedonate/internal/service"
	"wedonate/pkg/types"

	"github.com/alexedwards/flow"
)

type loginRequest struct {
	CNPJ     string `json:"cnpj"`
	Password string `json:"senha"`
}

type loginResponse struct {
	Token        string              `json:"token"`
	Organization *types.Organization `json:"organizacao"`
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, org, err := s.orgs.Login(r.Context(), req.CNPJ, req.Password)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, loginResponse{Token: token, Organization: org})
}

type createOrganizationForm struct {
	Name        string  `form:"nome_organizacao"`
	CNPJ        string  `form:"cnpj"`
	Email       string  `form:"email"`
	Password    string  `form:"senha"`
	Phone       *string `form:"telefone"`
	Description *string `form:"descricao"`
	PostalCode  string  `form:"cep"`
	Street      string  `form:"rua"`
	Number      string  `form:"numero"`
	District    string  `form:"bairro"`
	City        string  `form:"cidade"`
}

func (s *Service) handleCreateOrganization(w http.ResponseWriter, r *http.Request) {
	if err := parseRequestForm(r); err != nil {
		s.respondMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	var f createOrganizationForm
	if err := decoder.Decode(&f, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode organization form")
		s.respondMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	image, err := formUpload(r, "imagem")
	if err != nil {
		s.respondMessage(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	org, err := s.orgs.Create(r.Context(), service.CreateOrganizationInput{
		Name:        f.Name,
		CNPJ:        f.CNPJ,
		Email:       f.Email,
		Password:    f.Password,
		Phone:       f.Phone,
		Description: f.Description,
		PostalCode:  f.PostalCode,
		Street:      f.Street,
		Number:      f.Number,
		District:    f.District,
		City:        f.City,
		Image:       image,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, org)
}

func (s *Service) handleListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := s.orgs.List(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, orgs)
}

func (s *Service) handleSearchOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := s.orgs.Search(r.Context(), r.URL.Query().Get("nome"))
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, orgs)
}

func (s *Service) handleGetOrganization(w http.ResponseWriter, r *http.Request) {
	org, err := s.orgs.Organization(r.Context(), flow.Param(r.Context(), "id"))
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, org)
}

type updateOrganizationForm struct {
	Name        *string `form:"nome_organizacao"`
	Phone       *string `form:"telefone"`
	Password    *string `form:"senha"`
	Description *string `form:"descricao"`
	PostalCode  *string `form:"cep"`
	Street      *string `form:"rua"`
	Number      *string `form:"numero"`
	District    *string `form:"bairro"`
	City        *string `form:"cidade"`
}

func (s *Service) handleUpdateOrganization(w http.ResponseWriter, r *http.Request) {
	if err := parseRequestForm(r); err != nil {
		s.respondMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	var f updateOrganizationForm
	if err := decoder.Decode(&f, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode organization form")
		s.respondMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	image, err := formUpload(r, "imagem")
	if err != nil {
		s.respondMessage(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	org, err := s.orgs.Update(r.Context(), callerID(r), flow.Param(r.Context(), "id"), service.UpdateOrganizationInput{
		Name:        f.Name,
		Phone:       f.Phone,
		Password:    f.Password,
		Description: f.Description,
		PostalCode:  f.PostalCode,
		Street:      f.Street,
		Number:      f.Number,
		District:    f.District,
		City:        f.City,
		Image:       image,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, org)
}

func (s *Service) handleDeleteOrganization(w http.ResponseWriter, r *http.Request) {
	if err := s.orgs.Delete(r.Context(), callerID(r), flow.Param(r.Context(), "id")); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"message": "organization removed"})
}
