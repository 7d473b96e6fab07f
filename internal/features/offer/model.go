package offer

import (
	"go-fieldops/pkg/quantity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Element is one line item of an offer. ElementID is empty on documents
// written before element ids existed. Extra holds stored fields this service
// does not know about; they are written back unchanged.
type Element struct {
	ElementID   string  `json:"element_id,omitempty" bson:"element_id,omitempty"`
	Categoria   *string `json:"categoria" bson:"categoria"`
	Descripcion string  `json:"descripcion" bson:"descripcion" validate:"required"`
	Cantidad    float64 `json:"cantidad" bson:"cantidad" validate:"gt=0"`
	Foto        *string `json:"foto" bson:"foto"`
	Extra       bson.M  `json:"-" bson:",inline"`
}

type storedElement struct {
	ElementID   string  `bson:"element_id,omitempty"`
	Categoria   *string `bson:"categoria"`
	Descripcion string  `bson:"descripcion"`
	Cantidad    any     `bson:"cantidad"`
	Foto        *string `bson:"foto"`
	Extra       bson.M  `bson:",inline"`
}

// UnmarshalBSON accepts legacy elements whose cantidad was stored as a
// numeric string.
func (e *Element) UnmarshalBSON(data []byte) error {
	var doc storedElement
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}
	*e = Element{
		ElementID:   doc.ElementID,
		Categoria:   doc.Categoria,
		Descripcion: doc.Descripcion,
		Cantidad:    quantity.Parse(doc.Cantidad),
		Foto:        doc.Foto,
		Extra:       doc.Extra,
	}
	return nil
}

// ElementPatch carries the fields of an element update. Nil fields are left
// unchanged.
type ElementPatch struct {
	Categoria   *string  `json:"categoria,omitempty"`
	Descripcion *string  `json:"descripcion,omitempty"`
	Cantidad    *float64 `json:"cantidad,omitempty"`
	Foto        *string  `json:"foto,omitempty"`
}

func (p ElementPatch) IsEmpty() bool {
	return p.Categoria == nil && p.Descripcion == nil && p.Cantidad == nil && p.Foto == nil
}

// Offer keeps Elementos in storage (append) order. Every value handed to
// callers has them replaced by the sorted projection, see Project.
type Offer struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Descripcion   string             `json:"descripcion" bson:"descripcion" validate:"required"`
	Precio        float64            `json:"precio" bson:"precio" validate:"gte=0"`
	PrecioCliente *float64           `json:"precio_cliente,omitempty" bson:"precio_cliente,omitempty"`
	Imagen        *string            `json:"imagen,omitempty" bson:"imagen,omitempty"`
	Garantias     []string           `json:"garantias" bson:"garantias"`
	Elementos     []Element          `json:"elementos" bson:"elementos" validate:"dive"`
	Version       int64              `json:"version" bson:"version"`
}

// OfferUpdate is a partial update of the top-level fields. Elements are
// changed only through the element operations.
type OfferUpdate struct {
	Descripcion   *string   `json:"descripcion,omitempty"`
	Precio        *float64  `json:"precio,omitempty"`
	PrecioCliente *float64  `json:"precio_cliente,omitempty"`
	Imagen        *string   `json:"imagen,omitempty"`
	Garantias     *[]string `json:"garantias,omitempty"`
}

type SimplifiedOffer struct {
	ID            primitive.ObjectID `json:"id"`
	Descripcion   string             `json:"descripcion"`
	Precio        float64            `json:"precio"`
	PrecioCliente *float64           `json:"precio_cliente,omitempty"`
	Imagen        *string            `json:"imagen,omitempty"`
}
