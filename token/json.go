package token

import "encoding/json"

type jsonToken struct {
	ID    string `json:"id"`
	Begin int    `json:"begin"`
	End   int    `json:"end"`
	Value any    `json:"value,omitempty"`
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonToken{
		ID:    t.ID.Name(),
		Begin: t.Pos.Begin,
		End:   t.Pos.End,
		Value: t.Value.jsonValue(),
	})
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.jsonValue())
}

func (v Value) jsonValue() any {
	switch v.kind {
	case BoolValue:
		return v.b
	case IntValue:
		return v.i
	case DecimalValue:
		return v.d
	case StringValue:
		return v.s
	default:
		return nil
	}
}
