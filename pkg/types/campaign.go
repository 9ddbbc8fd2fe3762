package types

import "time"

type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "ativa"
	CampaignStatusPaused   CampaignStatus = "pausada"
	CampaignStatusFinished CampaignStatus = "encerrada"
)

type Campaign struct {
	ID             string         `db:"id_campanha" json:"id_campanha"`
	OrganizationID string         `db:"id_organizacao_criadora" json:"id_organizacao_criadora"`
	Title          string         `db:"titulo" json:"titulo"`
	Description    *string        `db:"descricao" json:"descricao"`
	NeededItems    *string        `db:"itens_necessarios" json:"itens_necessarios"`
	VenueAddress   string         `db:"endereco_campanha" json:"endereco_campanha"`
	StartDate      time.Time      `db:"data_inicio" json:"data_inicio"`
	EndDate        *time.Time     `db:"data_fim" json:"data_fim"`
	Status         CampaignStatus `db:"status" json:"status"`
	ImageURL       *string        `db:"imagem_url" json:"imagem_url"`
	CreatedAt      time.Time      `db:"data_criacao" json:"data_criacao"`

	// TimeRemaining is derived on read, never stored.
	TimeRemaining string `db:"-" json:"tempo_restante,omitempty"`
}
