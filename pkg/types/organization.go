package types

import "time"

// Organization is a registered donation-coordinating entity. Column and JSON
// names follow the public API contract.
type Organization struct {
	ID           string     `db:"id_organizacao" json:"id_organizacao"`
	Name         string     `db:"nome_organizacao" json:"nome_organizacao"`
	CNPJ         string     `db:"cnpj" json:"cnpj"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"senha_hash" json:"-"`
	Phone        *string    `db:"telefone" json:"telefone"`
	Description  *string    `db:"descricao" json:"descricao"`
	PostalCode   string     `db:"cep" json:"cep"`
	Street       string     `db:"rua" json:"rua"`
	Number       string     `db:"numero" json:"numero"`
	District     string     `db:"bairro" json:"bairro"`
	City         string     `db:"cidade" json:"cidade"`
	Latitude     float64    `db:"latitude" json:"latitude"`
	Longitude    float64    `db:"longitude" json:"longitude"`
	ImageURL     *string    `db:"imagem_url" json:"imagem_url"`
	CreatedAt    time.Time  `db:"data_cadastro" json:"data_cadastro"`
	LastChangeAt *time.Time `db:"data_ultima_alteracao" json:"data_ultima_alteracao"`
}

// Address composes the structured address fields into the single line the
// geocoding provider expects.
func (o *Organization) Address() string {
	return o.Street + ", " + o.Number + ", " + o.District + ", " + o.City + ", " + o.PostalCode
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
