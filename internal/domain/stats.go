package domain

// UserStats agrega la actividad de un usuario a traves de sus sesiones.
// TotalMessages cuenta solo turnos con rol "user".
type UserStats struct {
	TotalChats     int `json:"totalChats"`
	TotalMessages  int `json:"totalMessages"`
	ImagesAnalyzed int `json:"imagesAnalyzed"`
}
