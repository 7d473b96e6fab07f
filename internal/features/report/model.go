package report

import (
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportType string

const (
	ReportTypeInversion     ReportType = "inversion"
	ReportTypeAveria        ReportType = "averia"
	ReportTypeMantenimiento ReportType = "mantenimiento"
)

// WorkerRef is a worker as embedded in a report's brigade.
type WorkerRef struct {
	CI       string `json:"CI" bson:"CI" validate:"required"`
	Nombre   string `json:"nombre" bson:"nombre"`
	Apellido string `json:"apellido,omitempty" bson:"apellido,omitempty"`
}

type Brigade struct {
	Lider       WorkerRef   `json:"lider" bson:"lider"`
	Integrantes []WorkerRef `json:"integrantes" bson:"integrantes" validate:"dive"`
}

// Material is one consumption line of a report. Stored documents are loosely
// typed, so decoding never fails on a field's BSON type (see UnmarshalBSON).
type Material struct {
	Codigo      string `json:"codigo" bson:"codigo"`
	Descripcion string `json:"descripcion" bson:"descripcion"`
	UM          string `json:"um" bson:"um"`
	Categoria   string `json:"categoria,omitempty" bson:"categoria,omitempty"`
	Cantidad    any    `json:"cantidad" bson:"cantidad"`
}

// Materials decodes a materiales array keeping only the document entries.
// Anything else in the array, or a materiales value that is not an array,
// is dropped instead of failing the whole report.
type Materials []Material

func (ms *Materials) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*ms = Materials{}
	if t != bsontype.Array {
		return nil
	}
	values, err := bson.Raw(data).Values()
	if err != nil {
		return nil
	}
	for _, v := range values {
		if v.Type != bsontype.EmbeddedDocument {
			continue
		}
		var m Material
		if err := m.UnmarshalBSON(v.Value); err != nil {
			continue
		}
		*ms = append(*ms, m)
	}
	return nil
}

type FechaHora struct {
	Fecha      string `json:"fecha" bson:"fecha" validate:"required,datetime=2006-01-02"`
	HoraInicio string `json:"hora_inicio" bson:"hora_inicio" validate:"required"`
	HoraFin    string `json:"hora_fin" bson:"hora_fin" validate:"required"`
}

// Report is a brigade work record. Reports are immutable once created.
type Report struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TipoReporte ReportType         `json:"tipo_reporte" bson:"tipo_reporte" validate:"required,oneof=inversion averia mantenimiento"`
	Brigada     Brigade            `json:"brigada" bson:"brigada"`
	Materiales  Materials          `json:"materiales" bson:"materiales"`
	FechaHora   FechaHora          `json:"fecha_hora" bson:"fecha_hora"`
	Cliente     map[string]any     `json:"cliente,omitempty" bson:"cliente,omitempty"`
	Descripcion string             `json:"descripcion,omitempty" bson:"descripcion,omitempty"`
	Ubicacion   map[string]any     `json:"ubicacion,omitempty" bson:"ubicacion,omitempty"`
	Adjuntos    map[string]any     `json:"adjuntos,omitempty" bson:"adjuntos,omitempty"`
	CreatedAt   time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// ReportFilter narrows a report query. Zero values mean "no constraint".
// Dates compare as strings, which orders ISO YYYY-MM-DD correctly.
type ReportFilter struct {
	TipoReporte   string
	ClienteNumero string
	FechaInicio   string
	FechaFin      string
	LiderCI       string
	ParticipantCI string // leader or member
	Descripcion   string
	Q             string
	// SkipAttachments leaves adjuntos (base64 photos) out of the result.
	SkipAttachments bool
}

// WorkerHours is one row of the all-workers hours aggregation.
type WorkerHours struct {
	CI         string  `json:"ci"`
	Nombre     string  `json:"nombre"`
	Apellido   string  `json:"apellido,omitempty"`
	TotalHoras float64 `json:"total_horas"`
}

// WorkerTotal is the single-worker hours response.
type WorkerTotal struct {
	CI          string  `json:"ci"`
	FechaInicio string  `json:"fecha_inicio"`
	FechaFin    string  `json:"fecha_fin"`
	TotalHoras  float64 `json:"total_horas"`
}

type HoursReport struct {
	FechaInicio       string        `json:"fecha_inicio"`
	FechaFin          string        `json:"fecha_fin"`
	TotalTrabajadores int           `json:"total_trabajadores"`
	Trabajadores      []WorkerHours `json:"trabajadores"`
}

type MaterialUsage struct {
	Codigo      string  `json:"codigo"`
	Descripcion string  `json:"descripcion"`
	UM          string  `json:"um"`
	Cantidad    float64 `json:"cantidad"`
}

type BrigadeMaterials struct {
	LiderCI     string          `json:"lider_ci"`
	LiderNombre string          `json:"lider_nombre"`
	Materiales  []MaterialUsage `json:"materiales"`
}

type PeriodSummary struct {
	FechaInicio  string             `json:"fecha_inicio"`
	FechaFin     string             `json:"fecha_fin"`
	Trabajadores []WorkerHours      `json:"trabajadores"`
	Brigadas     []BrigadeMaterials `json:"brigadas"`
}

// UnmarshalBSON accepts any BSON type for every field: strings are taken as
// is, other scalars are formatted, cantidad is kept raw for quantity.Parse.
func (m *Material) UnmarshalBSON(data []byte) error {
	var raw bson.M
	if err := bson.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = Material{
		Codigo:      looseString(raw["codigo"]),
		Descripcion: looseString(raw["descripcion"]),
		UM:          looseString(raw["um"]),
		Categoria:   looseString(raw["categoria"]),
		Cantidad:    raw["cantidad"],
	}
	return nil
}

func looseString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
