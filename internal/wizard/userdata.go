package wizard

const (
	KeyProjectName = "project_name"
	KeyLanguage    = "language"
	KeyFeatures    = "features"
)

// Reader is the read-only view of UserData handed to steps.
type Reader interface {
	Get(key string) string
	Has(key string) bool
}

// UserData accumulates the answers collected during a single request.
// A store belongs to one Wizard and is never shared across requests.
type UserData struct {
	data map[string]string
}

// NewUserData returns an empty store.
func NewUserData() *UserData {
	return &UserData{data: make(map[string]string)}
}

// Set inserts or overwrites a value.
func (u *UserData) Set(key, value string) {
	u.data[key] = value
}

// Get returns the stored value, or an empty string when the key is absent.
func (u *UserData) Get(key string) string {
	return u.data[key]
}

// Has reports whether key has been set.
func (u *UserData) Has(key string) bool {
	_, ok := u.data[key]
	return ok
}

// Clear removes every entry.
func (u *UserData) Clear() {
	clear(u.data)
}

// Len returns the number of stored keys.
func (u *UserData) Len() int {
	return len(u.data)
}
