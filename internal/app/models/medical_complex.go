package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinicore-service/internal/pkg/bilingual"
)

type MedicalComplex struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID `json:"organizationId" bson:"organizationId"`
	Name           bilingual.Message  `json:"name" bson:"name"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	TimeModel      `bson:",inline"`
}
