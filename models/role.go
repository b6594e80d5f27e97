package models

// Role is a group member's capability level. Roles are total-ordered by
// privilege for visibility decisions: banned members see nothing of a
// restricted collection, regular members see active content, and
// moderators and above additionally see hidden items.
type Role string

const (
	RoleBanned    Role = "banned"
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
	RoleOwner     Role = "owner"

	// RoleNone marks an actor with no membership row. For read purposes a
	// non-member is treated like a regular member of a public group.
	RoleNone Role = ""
)

// roleLevels orders roles by privilege. RoleNone shares the member level;
// it exists so callers can distinguish "no row" from an explicit grant.
var roleLevels = map[Role]int{
	RoleBanned:    0,
	RoleNone:      1,
	RoleMember:    1,
	RoleModerator: 2,
	RoleAdmin:     3,
	RoleOwner:     4,
}

// Level returns the privilege rank of the role. Unknown role strings rank
// as member so a bad row never silently grants moderator powers.
func (r Role) Level() int {
	if lvl, ok := roleLevels[r]; ok {
		return lvl
	}
	return roleLevels[RoleMember]
}

// AtLeast reports whether the role carries at least the privilege of other.
func (r Role) AtLeast(other Role) bool { return r.Level() >= other.Level() }

// Banned reports whether the role is the banned level.
func (r Role) Banned() bool { return r == RoleBanned }
