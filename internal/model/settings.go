package model

// UserSettings holds the operator's default carrier sender location.
type UserSettings struct {
	ID        string     `json:"id"`
	City      *City      `json:"npCity,omitempty"`
	Warehouse *Warehouse `json:"npWarehouse,omitempty"`
}

// Complete reports whether the settings carry everything order submission
// needs from the sender side.
func (s *UserSettings) Complete() bool {
	return s != nil && s.City != nil && s.Warehouse != nil
}

// AddUserSettings creates the operator's carrier settings.
type AddUserSettings struct {
	City      City      `json:"npCity"`
	Warehouse Warehouse `json:"npWarehouse"`
}

// UpdateUserSettings replaces the operator's carrier settings.
type UpdateUserSettings struct {
	ID        string    `json:"id"`
	City      City      `json:"npCity"`
	Warehouse Warehouse `json:"npWarehouse"`
}
