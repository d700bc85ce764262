package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinicore-service/internal/pkg/bilingual"
)

type Clinic struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ComplexID primitive.ObjectID `json:"complexId" bson:"complexId"`
	Name      bilingual.Message  `json:"name" bson:"name"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	TimeModel `bson:",inline"`
}
