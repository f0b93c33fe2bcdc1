package domain

// User is a catalog user account.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Key returns the user id.
func (u User) Key() string {
	return u.ID
}

type userPayload struct {
	Name *string `mapstructure:"name" validate:"required,min=1"`
	Age  *int    `mapstructure:"age" validate:"required"`
}

type userUpdatePayload struct {
	Name *string `mapstructure:"name" validate:"omitempty,min=1"`
	Age  *int    `mapstructure:"age"`
}

// UserSchema builds and patches User records.
type UserSchema struct{}

func (UserSchema) Kind() string {
	return "User"
}

// New implements store.Schema. name and age are required.
func (UserSchema) New(id string, fields map[string]any) (User, error) {
	var payload userPayload
	if err := decodeFields(fields, &payload); err != nil {
		return User{}, err
	}
	trim(payload.Name)
	if err := checkFields(&payload); err != nil {
		return User{}, err
	}
	return User{ID: id, Name: *payload.Name, Age: *payload.Age}, nil
}

func (UserSchema) Merge(u User, fields map[string]any) (User, bool, error) {
	var payload userUpdatePayload
	if err := decodeFields(fields, &payload); err != nil {
		return u, false, err
	}
	trim(payload.Name)
	if err := checkFields(&payload); err != nil {
		return u, false, err
	}

	applied := false
	if payload.Name != nil {
		u.Name = *payload.Name
		applied = true
	}
	if payload.Age != nil {
		u.Age = *payload.Age
		applied = true
	}
	return u, applied, nil
}
