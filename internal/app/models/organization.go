package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinicore-service/internal/pkg/bilingual"
)

type Organization struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      bilingual.Message  `json:"name" bson:"name"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	TimeModel `bson:",inline"`
}
