package staff

import "strings"

type Manager struct {
	id        string
	lastName  string
	firstName string
	email     string
	avatarURL string
}

func NewManager(id, lastName, firstName, email string, opts ...ManagerOption) Manager {
	m := Manager{
		id:        strings.TrimSpace(id),
		lastName:  strings.TrimSpace(lastName),
		firstName: strings.TrimSpace(firstName),
		email:     strings.TrimSpace(email),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

type ManagerOption func(*Manager)

func WithManagerAvatarURL(avatarURL string) ManagerOption {
	return func(m *Manager) { m.avatarURL = avatarURL }
}

func (m Manager) ID() string        { return m.id }
func (m Manager) LastName() string  { return m.lastName }
func (m Manager) FirstName() string { return m.firstName }
func (m Manager) Email() string     { return m.email }
func (m Manager) AvatarURL() string { return m.avatarURL }
func (m Manager) IsZero() bool      { return m.id == "" }

func (m Manager) FullName() string {
	return strings.TrimSpace(m.firstName + " " + m.lastName)
}
