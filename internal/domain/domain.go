package domain

// Manager is the single authorized inventory manager. There is exactly
// one per running process; the application context constructs it from
// configuration and hands it to the collaborators that need it.
type Manager struct {
	ID          string
	Name        string
	ContactInfo string
}
