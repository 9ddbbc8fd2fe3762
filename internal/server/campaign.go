package server

import (
	"net/http"
	"time"

	"wedonate/internal/service"
	"wedonate/pkg/types"

	"github.com/alexedwards/flow"
)

type campaignForm struct {
	Title        *string `form:"titulo"`
	Description  *string `form:"descricao"`
	NeededItems  *string `form:"itens_necessarios"`
	VenueAddress *string `form:"endereco_campanha"`
	Status       *string `form:"status"`
}

// campaignDates reads data_inicio and data_fim by hand: an empty data_fim is
// an explicit clear, which the form decoder cannot tell apart from absent.
func campaignDates(r *http.Request) (start *time.Time, end *time.Time, clearEnd bool, err error) {
	if raw, ok := formValue(r, "data_inicio"); ok && raw != "" {
		t, perr := parseDate(raw)
		if perr != nil {
			return nil, nil, false, types.NewValidationError("invalid data_inicio: %q", raw)
		}
		start = &t
	}

	raw, ok := formValue(r, "data_fim")
	if !ok {
		return start, nil, false, nil
	}
	if raw == "" {
		return start, nil, true, nil
	}

	t, perr := parseDate(raw)
	if perr != nil {
		return nil, nil, false, types.NewValidationError("invalid data_fim: %q", raw)
	}
	return start, &t, false, nil
}

func (s *Service) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	if err := parseRequestForm(r); err != nil {
		s.respondMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	var f campaignForm
	if err := decoder.Decode(&f, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode campaign form")
		s.respondMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	start, end, _, err := campaignDates(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	image, err := formUpload(r, "imagem")
	if err != nil {
		s.respondMessage(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	in := service.CreateCampaignInput{
		Description: f.Description,
		NeededItems: f.NeededItems,
		EndDate:     end,
		Image:       image,
	}
	if f.Title != nil {
		in.Title = *f.Title
	}
	if f.VenueAddress != nil {
		in.VenueAddress = *f.VenueAddress
	}
	if start != nil {
		in.StartDate = *start
	}
	if f.Status != nil {
		in.Status = types.CampaignStatus(*f.Status)
	}

	campaign, err := s.campaigns.Create(r.Context(), callerID(r), in)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, campaign)
}

func (s *Service) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := s.campaigns.List(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, campaigns)
}

func (s *Service) handleSearchCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := s.campaigns.Search(r.Context(), r.URL.Query().Get("titulo"))
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, campaigns)
}

func (s *Service) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := s.campaigns.Campaign(r.Context(), flow.Param(r.Context(), "id"))
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, campaign)
}

func (s *Service) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	if err := parseRequestForm(r); err != nil {
		s.respondMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	var f campaignForm
	if err := decoder.Decode(&f, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode campaign form")
		s.respondMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	start, end, clearEnd, err := campaignDates(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	image, err := formUpload(r, "imagem")
	if err != nil {
		s.respondMessage(w, http.StatusBadRequest, "invalid image upload")
		return
	}

	in := service.UpdateCampaignInput{
		Title:        f.Title,
		Description:  f.Description,
		NeededItems:  f.NeededItems,
		VenueAddress: f.VenueAddress,
		StartDate:    start,
		EndDate:      end,
		ClearEndDate: clearEnd,
		Image:        image,
	}
	if f.Status != nil {
		status := types.CampaignStatus(*f.Status)
		in.Status = &status
	}

	campaign, err := s.campaigns.Update(r.Context(), callerID(r), flow.Param(r.Context(), "id"), in)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, campaign)
}

func (s *Service) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := s.campaigns.Delete(r.Context(), callerID(r), flow.Param(r.Context(), "id")); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"message": "campaign removed"})
}
