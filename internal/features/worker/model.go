package worker

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Worker is an entry of the worker directory. CI is unique.
type Worker struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CI        string             `json:"CI" bson:"CI" validate:"required"`
	Nombre    string             `json:"nombre" bson:"nombre" validate:"required"`
	Apellido  string             `json:"apellido,omitempty" bson:"apellido,omitempty"`
	CreatedAt time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// Brigade is the stored team of a leader. A leader has at most one brigade,
// so brigades are addressed by the leader's CI.
type Brigade struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	LiderCI       string             `json:"lider_ci" bson:"lider_ci" validate:"required"`
	IntegrantesCI []string           `json:"integrantes_ci" bson:"integrantes_ci"`
}

// BrigadeView is a brigade with its members resolved through the directory.
// Members missing from the directory are listed with their CI only.
type BrigadeView struct {
	LiderCI     string   `json:"lider_ci"`
	Lider       Worker   `json:"lider"`
	Integrantes []Worker `json:"integrantes"`
}

type MemberRequest struct {
	CI string `json:"CI" validate:"required"`
}
