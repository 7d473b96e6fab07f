package offer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestOfferUnmarshalBSON_LegacyCantidad(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"descripcion": "Kit solar",
		"elementos": bson.A{
			bson.M{"categoria": "A", "descripcion": "x", "cantidad": "2"},
			bson.M{"categoria": "B", "descripcion": "y", "cantidad": int32(3)},
			bson.M{"categoria": "C", "descripcion": "z", "cantidad": "n/a"},
		},
	})
	require.NoError(t, err)

	var o Offer
	require.NoError(t, bson.Unmarshal(raw, &o))
	require.Len(t, o.Elementos, 3)
	assert.Equal(t, 2.0, o.Elementos[0].Cantidad)
	assert.Equal(t, 3.0, o.Elementos[1].Cantidad)
	assert.Equal(t, 0.0, o.Elementos[2].Cantidad)
	assert.Equal(t, "A", *o.Elementos[0].Categoria)
}

func TestElementBSON_KeepsUnknownFields(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"categoria":   "A",
		"descripcion": "x",
		"cantidad":    1.5,
		"proveedor":   "ACME",
	})
	require.NoError(t, err)

	var e Element
	require.NoError(t, bson.Unmarshal(raw, &e))
	assert.Equal(t, "ACME", e.Extra["proveedor"])
	assert.NotContains(t, e.Extra, "descripcion")

	patched, _, _, err := UpdateAt([]Element{e}, 0, ElementPatch{Descripcion: str("nuevo")})
	require.NoError(t, err)

	out, err := bson.Marshal(patched[0])
	require.NoError(t, err)
	var stored bson.M
	require.NoError(t, bson.Unmarshal(out, &stored))
	assert.Equal(t, "ACME", stored["proveedor"])
	assert.Equal(t, "nuevo", stored["descripcion"])
}
