// internal/domain/models/strategyheadclient.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StrategyHeadClient is the hand-off record written when a client is sent to
// the strategy head. It is an append-only snapshot of the client at hand-off
// time; it is not kept in sync with the source client afterwards, except for
// the flag-repair worker that fixes a client whose hand-off record exists but
// whose sent_to_strategy_head flag was never set.
type StrategyHeadClient struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientRef primitive.ObjectID `bson:"client_ref" json:"client_ref"`

	ClientID      string `bson:"client_id" json:"client_id"`
	ClientName    string `bson:"client_name" json:"client_name"`
	ContactNumber string `bson:"contact_number,omitempty" json:"contact_number,omitempty"`
	Email         string `bson:"email,omitempty" json:"email,omitempty"`

	VideoInstructions    string `bson:"video_instructions,omitempty" json:"video_instructions,omitempty"`
	GraphicsInstructions string `bson:"graphics_instructions,omitempty" json:"graphics_instructions,omitempty"`

	Stage     string `bson:"stage" json:"stage"` // free-text workflow marker, starts at "information-gathering"
	TaskCount int    `bson:"task_count" json:"task_count"`
	Deleted   bool   `bson:"deleted" json:"deleted"`

	SentAt time.Time `bson:"sent_at" json:"sent_at"`
	SentBy string    `bson:"sent_by" json:"sent_by"`
}
