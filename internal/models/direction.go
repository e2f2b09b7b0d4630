package models

// Direction is a postal address belonging to a client. The RESTRICT
// constraint forces addresses to be cleaned up before their client can be
// physically removed.
type Direction struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Street    string `gorm:"size:255;not null" json:"street"`
	Region    int    `gorm:"not null" json:"region"`
	Comuna    string `gorm:"size:100;not null" json:"comuna"`
	Reference string `gorm:"size:255" json:"reference"`
	ClientID  uint   `gorm:"not null;index" json:"client_id"`
	Client    Client `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT" json:"-"`
}
