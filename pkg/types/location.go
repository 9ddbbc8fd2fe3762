package types

import "time"

// Location is a physical donation point registered by an organization.
type Location struct {
	ID                string    `db:"id_local" json:"id_local"`
	OrganizationID    string    `db:"id_org_cadastro" json:"id_org_cadastro"`
	Name              string    `db:"nome" json:"nome"`
	Address           string    `db:"endereco" json:"endereco"`
	Latitude          float64   `db:"latitude" json:"latitude"`
	Longitude         float64   `db:"longitude" json:"longitude"`
	Description       *string   `db:"descricao" json:"descricao"`
	Category          *string   `db:"categoria" json:"categoria"`
	Phone             *string   `db:"telefone" json:"telefone"`
	OperationalStatus *string   `db:"status_operacional" json:"status_operacional"`
	ImageURL          *string   `db:"imagem_url" json:"imagem_url"`
	CreatedAt         time.Time `db:"data_criacao" json:"data_criacao"`
}
