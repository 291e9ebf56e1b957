package cart

import "encoding/json"

// Entry é uma posição materializada do carrinho: ou o valor decodificado
// do JSON armazenado, ou a string crua quando a decodificação falha. Uma
// entrada malformada nunca derruba a listagem inteira.
type Entry struct {
	value   any
	raw     string
	decoded bool
}

// DecodeEntry tenta decodificar o elemento armazenado.
func DecodeEntry(raw string) Entry {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return Entry{raw: raw}
	}
	return Entry{value: v, decoded: true}
}

// Value devolve o valor decodificado e se a decodificação aconteceu.
func (e Entry) Value() (any, bool) { return e.value, e.decoded }

// Raw devolve a string armazenada quando a entrada não decodificou.
func (e Entry) Raw() string { return e.raw }

// MarshalJSON serializa o valor decodificado, ou a string crua como veio.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.decoded {
		return json.Marshal(e.value)
	}
	return json.Marshal(e.raw)
}
