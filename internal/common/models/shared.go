package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
)

type AuditAction string

const (
	AuditActionCreate        AuditAction = "CREATE"
	AuditActionUpdate        AuditAction = "UPDATE"
	AuditActionDelete        AuditAction = "DELETE"
	AuditActionElementAdd    AuditAction = "ELEMENT_ADD"
	AuditActionElementUpdate AuditAction = "ELEMENT_UPDATE"
	AuditActionElementRemove AuditAction = "ELEMENT_REMOVE"
)

type Change struct {
	Old interface{} `bson:"old" json:"old"`
	New interface{} `bson:"new" json:"new"`
}

type AuditLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action    AuditAction        `bson:"action" json:"action"`
	Module    string             `bson:"module" json:"module"`       // collection name
	RecordID  string             `bson:"record_id" json:"record_id"` // document id
	ActorID   string             `bson:"actor_id" json:"actor_id"`
	ActorCI   string             `bson:"actor_ci,omitempty" json:"actor_ci,omitempty"`
	Changes   map[string]Change  `bson:"changes,omitempty" json:"changes,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// Log is one application log line persisted by the logger's DB sink.
type Log struct {
	Message      string            `bson:"message" json:"message"`
	LogLevelId   int               `bson:"log_level_id" json:"log_level_id"`
	Caller       string            `bson:"caller,omitempty" json:"caller,omitempty"`
	RequestID    string            `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Context      map[string]string `bson:"context,omitempty" json:"context,omitempty"`
	AppId        string            `bson:"app_id" json:"app_id"`
	CreatedOnUtc time.Time         `bson:"created_on_utc" json:"created_on_utc"`
}
