package config

// Role is the closed set of user roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Capability is a named permission a role may hold.
type Capability string

const (
	CapGetUsers            Capability = "getUsers"
	CapManageUsers         Capability = "manageUsers"
	CapGetConversations    Capability = "getConversations"
	CapManageConversations Capability = "manageConversations"
	CapGetMessages         Capability = "getMessages"
	CapManageMessages      Capability = "manageMessages"
)

// RoleCapabilities maps each role to the capabilities it may exercise.
// It is built once at startup and injected read-only; it is the single
// source of truth for authorization decisions.
type RoleCapabilities map[Role]map[Capability]bool

// DefaultRoleCapabilities returns the capability map for the process.
func DefaultRoleCapabilities() RoleCapabilities {
	return RoleCapabilities{
		RoleUser: capSet(
			CapGetConversations,
			CapGetMessages,
		),
		RoleAdmin: capSet(
			CapGetUsers,
			CapManageUsers,
			CapGetConversations,
			CapManageConversations,
			CapGetMessages,
			CapManageMessages,
		),
	}
}

// Allows reports whether role holds the capability.
func (rc RoleCapabilities) Allows(role Role, cap Capability) bool {
	return rc[role][cap]
}

// ValidRole reports whether role is part of the closed role set.
func (rc RoleCapabilities) ValidRole(role Role) bool {
	_, ok := rc[role]
	return ok
}

func capSet(caps ...Capability) map[Capability]bool {
	set := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		set[c] = true
	}
	return set
}
