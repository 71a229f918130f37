package model

// User is the locally stored session identity. Its presence under the user
// key is what "logged in" means; there is no verified credential behind it.
type User struct {
	FullName string         `json:"fullName,omitempty"`
	Phone    string         `json:"phone"`
	Extra    map[string]any `json:"extra,omitempty"`
}
