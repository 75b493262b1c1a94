package store

type Store struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	OpenTime    string  `json:"open_time"`
	CloseTime   string  `json:"close_time"`
	IsOpen      bool    `json:"is_open"`
	Description string  `json:"description"`
}
