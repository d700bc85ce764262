package responses

import "clinicore-service/internal/pkg/bilingual"

type ResponseDTO struct {
	Success bool              `json:"success"`
	Message bilingual.Message `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
}
