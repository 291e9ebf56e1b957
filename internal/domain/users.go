// Package domain define as entidades das três coleções de usuários.
package domain

// ImobiliariaUser é a conta do app de imobiliária.
type ImobiliariaUser struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Password  string   `json:"password"`
	Favoritos []string `json:"favoritos"`
}

// LojaUser é a conta do app de loja. O carrinho guarda payloads
// serializados em JSON, um item por posição.
type LojaUser struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Password  string   `json:"password"`
	Endereco  *string  `json:"endereco"`
	Carrinho  []string `json:"carrinho"`
	Historico []string `json:"historico"`
}

// BlogUser é a conta do app de blog.
type BlogUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Age      int    `json:"age"`
}

func (u *ImobiliariaUser) EntityID() string      { return u.ID }
func (u *ImobiliariaUser) SetEntityID(id string) { u.ID = id }
func (u *ImobiliariaUser) EntityName() string    { return u.Name }
func (u *ImobiliariaUser) EntityPassword() string {
	return u.Password
}

func (u *LojaUser) EntityID() string       { return u.ID }
func (u *LojaUser) SetEntityID(id string)  { u.ID = id }
func (u *LojaUser) EntityName() string     { return u.Name }
func (u *LojaUser) EntityPassword() string { return u.Password }

func (u *BlogUser) EntityID() string       { return u.ID }
func (u *BlogUser) SetEntityID(id string)  { u.ID = id }
func (u *BlogUser) EntityName() string     { return u.Name }
func (u *BlogUser) EntityPassword() string { return u.Password }
