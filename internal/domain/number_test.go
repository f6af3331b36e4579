package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want FormNumber
	}{
		{"42", Num(42)},
		{"  3.5kg", Num(3.5)},
		{"12abc", Num(12)},
		{".5", Num(0.5)},
		{"-7", Num(-7)},
		{"+2", Num(2)},
		{"1.", Num(1)},
		{"1e3", Num(1000)},
		{"1e", Num(1)},
		{"", FormNumber{}},
		{"   ", FormNumber{}},
		{"abc", FormNumber{}},
		{"-", FormNumber{}},
		{".", FormNumber{}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFormNumber(tt.raw))
		})
	}
}

func TestFormNumberOr(t *testing.T) {
	assert.Equal(t, 9.0, FormNumber{}.Or(9))
	assert.Equal(t, 0.0, Num(0).Or(9))
	assert.Equal(t, 0.0, FormNumber{}.Float())
	assert.Equal(t, 4.5, Num(4.5).Float())
}

func TestFormNumberJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want FormNumber
	}{
		{"number", `{"n": 12.5}`, Num(12.5)},
		{"numeric string", `{"n": "15"}`, Num(15)},
		{"string with unit", `{"n": "450 km"}`, Num(450)},
		{"empty string", `{"n": ""}`, FormNumber{}},
		{"null", `{"n": null}`, FormNumber{}},
		{"missing", `{}`, FormNumber{}},
		{"boolean", `{"n": true}`, FormNumber{}},
		{"object", `{"n": {"v": 1}}`, FormNumber{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				N FormNumber `json:"n"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &out))
			assert.Equal(t, tt.want, out.N)
		})
	}

	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(struct {
			A FormNumber `json:"a"`
			B FormNumber `json:"b"`
		}{A: Num(2.5)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"a": 2.5, "b": null}`, string(data))
	})
}
