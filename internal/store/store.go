// Package store define o contrato de persistência por coleção de entidade.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indica que não existe entidade com a chave dada.
	ErrNotFound = errors.New("not found")
	// ErrConflict indica violação da constraint de unicidade em name.
	ErrConflict = errors.New("conflict")
)

// Entity é o mínimo que toda conta expõe para as camadas genéricas.
// Implementado por ponteiros das structs de domain.
type Entity interface {
	EntityID() string
	SetEntityID(string)
	EntityName() string
	EntityPassword() string
}

// Collection é um repositório por coleção. Create atribui o id na própria
// entidade e devolve ErrConflict quando o name já existe na coleção.
// Update aplica apenas os campos presentes no map, substituindo o valor
// armazenado por inteiro (listas inclusive).
type Collection[E Entity] interface {
	Create(ctx context.Context, e E) error
	List(ctx context.Context) ([]E, error)
	Get(ctx context.Context, id string) (E, error)
	GetByName(ctx context.Context, name string) (E, error)
	Update(ctx context.Context, id string, fields map[string]any) (E, error)
	Delete(ctx context.Context, id string) error
}
