package dto

type ClientRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type DirectionRequest struct {
	Street    string `json:"street"`
	Region    int    `json:"region"`
	Comuna    string `json:"comuna"`
	Reference string `json:"reference"`
	ClientID  uint   `json:"client_id"`
}
