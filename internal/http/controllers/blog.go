package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/mfardini/multiconta/internal/accounts"
	"github.com/mfardini/multiconta/internal/domain"
	"github.com/mfardini/multiconta/internal/http/dto"
	"github.com/mfardini/multiconta/internal/http/httperrors"
)

const msgBlogRequired = "Nome, idade (número) e senha são obrigatórios."

// BlogController atende /blog.
type BlogController struct {
	crud[*domain.BlogUser]
}

func NewBlog(reg *accounts.Registry[*domain.BlogUser], ver *accounts.Verifier[*domain.BlogUser]) *BlogController {
	return &BlogController{crud: crud[*domain.BlogUser]{
		reg: reg,
		ver: ver,
		msg: DomainMessages{
			Create: "Erro ao criar usuário blog.",
			Fetch:  "Erro ao buscar usuários blog.",
			Edit:   "Erro ao editar usuário blog.",
			Delete: "Erro ao deletar usuário blog.",
			Login:  "Erro no login blog.",
		},
	}}
}

// Register responde POST /blog/users. Além de nome e senha, exige age
// presente e numérico.
func (c *BlogController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterBlogRequest
	if err := decodeBody(w, r, &req); err != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}

	age, ok := req.AgeNumber()
	if !ok {
		httperrors.WriteError(w, httperrors.BadRequest(msgBlogRequired))
		return
	}

	u := &domain.BlogUser{
		Name:     req.Name,
		Password: req.Password,
		Age:      age,
	}
	if err := c.reg.Register(r.Context(), u); err != nil {
		c.writeRegisterError(w, r, err)
		return
	}
	httperrors.WriteJSON(w, http.StatusCreated, u)
}

// Update responde PUT /blog/users/{id}.
func (c *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := decodeBody(w, r, &body); err != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}

	fields := map[string]any{}
	if putField[string](body, "name", fields) != nil ||
		putField[string](body, "password", fields) != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}
	if raw, ok := body["age"]; ok {
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
			return
		}
		fields["age"] = int(n)
	}

	c.update(w, r, fields)
}
