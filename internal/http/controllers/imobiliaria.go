package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/mfardini/multiconta/internal/accounts"
	"github.com/mfardini/multiconta/internal/domain"
	"github.com/mfardini/multiconta/internal/http/dto"
	"github.com/mfardini/multiconta/internal/http/httperrors"
)

// ImobiliariaController atende /imobiliaria.
type ImobiliariaController struct {
	crud[*domain.ImobiliariaUser]
}

func NewImobiliaria(reg *accounts.Registry[*domain.ImobiliariaUser], ver *accounts.Verifier[*domain.ImobiliariaUser]) *ImobiliariaController {
	return &ImobiliariaController{crud: crud[*domain.ImobiliariaUser]{
		reg: reg,
		ver: ver,
		msg: DomainMessages{
			Create: "Erro ao criar usuário imobiliária.",
			Fetch:  "Erro ao buscar usuários imobiliária.",
			Edit:   "Erro ao editar usuário imobiliária.",
			Delete: "Erro ao deletar usuário imobiliária.",
			Login:  "Erro no login imobiliária.",
		},
	}}
}

// Register responde POST /imobiliaria/users. Favoritos sempre começa vazio.
func (c *ImobiliariaController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterImobiliariaRequest
	if err := decodeBody(w, r, &req); err != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}

	u := &domain.ImobiliariaUser{
		Name:      req.Name,
		Password:  req.Password,
		Favoritos: []string{},
	}
	if err := c.reg.Register(r.Context(), u); err != nil {
		c.writeRegisterError(w, r, err)
		return
	}
	httperrors.WriteJSON(w, http.StatusCreated, u)
}

// Update responde PUT /imobiliaria/users/{id}. Campos presentes substituem
// o valor armazenado por inteiro; nada é revalidado.
func (c *ImobiliariaController) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := decodeBody(w, r, &body); err != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}

	fields := map[string]any{}
	if err := putField[string](body, "name", fields); err != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}
	if err := putField[string](body, "password", fields); err != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}
	if err := putField[[]string](body, "favoritos", fields); err != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}

	c.update(w, r, fields)
}
