package server

import (
	"net/http"

	"wedonate/internal/service"

	"github.com/alexedwards/flow"
)

type createLocationForm struct {
	Name              string  `form:"nome"`
	Address           string  `form:"endereco"`
	Latitude          float64 `form:"latitude"`
	Longitude         float64 `form:"longitude"`
	Description       *string `form:"descricao"`
	Category          *string `form:"categoria"`
	Phone             *string `form:"telefone"`
	OperationalStatus *string `form:"status_operacional"`
}

func (s *Service) handleCreateLocation(w http.ResponseWriter, r *http.Request) {
	if err := parseRequestForm(r); err != nil {
		s.respondMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	var f createLocationForm
	if err := decoder.Decode(&f, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode location form")
		s.respondMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	image, err := formUpload(r, "imagem")
	if err != nil {
		s.respondMessage(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	location, err := s.locations.Create(r.Context(), callerID(r), service.CreateLocationInput{
		Name:              f.Name,
		Address:           f.Address,
		Latitude:          f.Latitude,
		Longitude:         f.Longitude,
		Description:       f.Description,
		Category:          f.Category,
		Phone:             f.Phone,
		OperationalStatus: f.OperationalStatus,
		Image:             image,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, location)
}

func (s *Service) handleListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.locations.List(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, locations)
}

func (s *Service) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	location, err := s.locations.Location(r.Context(), flow.Param(r.Context(), "id"))
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, location)
}

type updateLocationForm struct {
	Name              *string  `form:"nome"`
	Address           *string  `form:"endereco"`
	Latitude          *float64 `form:"latitude"`
	Longitude         *float64 `form:"longitude"`
	Description       *string  `form:"descricao"`
	Category          *string  `form:"categoria"`
	Phone             *string  `form:"telefone"`
	OperationalStatus *string  `form:"status_operacional"`
}

func (s *Service) handleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	if err := parseRequestForm(r); err != nil {
		s.respondMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	var f updateLocationForm
	if err := decoder.Decode(&f, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode location form")
		s.respondMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	image, err := formUpload(r, "imagem")
	if err != nil {
		s.respondMessage(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	location, err := s.locations.Update(r.Context(), callerID(r), flow.Param(r.Context(), "id"), service.UpdateLocationInput{
		Name:              f.Name,
		Address:           f.Address,
		Latitude:          f.Latitude,
		Longitude:         f.Longitude,
		Description:       f.Description,
		Category:          f.Category,
		Phone:             f.Phone,
		OperationalStatus: f.OperationalStatus,
		Image:             image,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, location)
}

func (s *Service) handleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := s.locations.Delete(r.Context(), callerID(r), flow.Param(r.Context(), "id")); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"message": "location removed"})
}
