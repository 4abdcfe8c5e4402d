package dto

// HealthResponseDTO는 /health 응답 형식이다.
type HealthResponseDTO struct {
	Status   string `json:"status" example:"ok"`
	Upstream string `json:"upstream,omitempty" example:"down"`
	Error    string `json:"error,omitempty"`
}
