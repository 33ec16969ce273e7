// Package staff holds the immutable reference people the fixture dataset
// ships: the collaborators being reviewed and the managers running reviews.
package staff

import "strings"

type Collaborator struct {
	id          string
	lastName    string
	firstName   string
	email       string
	jobTitle    string
	arrivalDate string
	avatarURL   string
}

func NewCollaborator(id, lastName, firstName, email string, opts ...CollaboratorOption) Collaborator {
	c := Collaborator{
		id:        strings.TrimSpace(id),
		lastName:  strings.TrimSpace(lastName),
		firstName: strings.TrimSpace(firstName),
		email:     strings.TrimSpace(email),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

type CollaboratorOption func(*Collaborator)

func WithJobTitle(jobTitle string) CollaboratorOption {
	return func(c *Collaborator) { c.jobTitle = jobTitle }
}

func WithArrivalDate(arrivalDate string) CollaboratorOption {
	return func(c *Collaborator) { c.arrivalDate = arrivalDate }
}

func WithCollaboratorAvatarURL(avatarURL string) CollaboratorOption {
	return func(c *Collaborator) { c.avatarURL = avatarURL }
}

func (c Collaborator) ID() string          { return c.id }
func (c Collaborator) LastName() string    { return c.lastName }
func (c Collaborator) FirstName() string   { return c.firstName }
func (c Collaborator) Email() string       { return c.email }
func (c Collaborator) JobTitle() string    { return c.jobTitle }
func (c Collaborator) ArrivalDate() string { return c.arrivalDate }
func (c Collaborator) AvatarURL() string   { return c.avatarURL }
func (c Collaborator) IsZero() bool        { return c.id == "" }

func (c Collaborator) FullName() string {
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}
