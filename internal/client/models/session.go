// Package models defines the client-side data shapes passed between the
// bootstrap chain, its collaborators and the CLI.
package models

import "strings"

// Credential is an opaque OAuth access token. Empty means "no credential".
type Credential string

// AuthorizationCode is the one-time code the user obtains from the provider's
// authorization page. It is exchanged at most once.
type AuthorizationCode string

// Profile is the signed-in user as reported by the provider. Any field may
// be empty when the provider omitted it.
type Profile struct {
	// UserName is the provider handle; it keys the avatar lookup.
	UserName string
	// DisplayName is "first last" with missing parts dropped.
	DisplayName string
	// LoginName is "@" + UserName, or empty.
	LoginName string
	Bio       string
}

// NewProfile shapes raw provider fields the way the main screen shows them.
func NewProfile(userName, firstName, lastName, bio string) Profile {
	p := Profile{
		UserName:    userName,
		DisplayName: strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName)),
		Bio:         bio,
	}
	if userName != "" {
		p.LoginName = "@" + userName
	}
	return p
}

// Session is what the main screen receives once the chain completes.
// AvatarURL is empty when the avatar lookup failed.
type Session struct {
	Profile   Profile
	AvatarURL string
}
