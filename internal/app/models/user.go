package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinicore-service/internal/pkg/bilingual"
)

// User is a clinic staff member. Doctors carry appointments; their working
// hours take part in conflict detection and rescheduling.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ClinicID  primitive.ObjectID `json:"clinicId" bson:"clinicId"`
	Role      string             `json:"role" bson:"role"`
	Name      bilingual.Message  `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	TimeModel `bson:",inline"`
}
