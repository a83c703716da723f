package roles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasPermission_Ordering(t *testing.T) {
	tests := []struct {
		subject  Role
		required Role
		want     bool
	}{
		{Regular, Regular, true},
		{Regular, Volunteer, false},
		{Regular, Admin, false},
		{Volunteer, Regular, true},
		{Volunteer, Volunteer, true},
		{Volunteer, Admin, false},
		{Admin, Regular, true},
		{Admin, Volunteer, true},
		{Admin, Admin, true},
	}
	for _, tc := range tests {
		got := HasPermission(tc.subject, tc.required)
		require.Equal(t, tc.want, got, "HasPermission(%s, %s)", tc.subject, tc.required)
	}
}

// A subject that outranks another must hold every permission the lower
// subject holds.
func TestHasPermission_Monotonic(t *testing.T) {
	all := All()
	for i, lower := range all {
		for _, higher := range all[i:] {
			for _, required := range all {
				if HasPermission(lower, required) {
					require.True(t, HasPermission(higher, required),
						"%s outranks %s but lacks %s-tier permission", higher, lower, required)
				}
			}
		}
	}
}

func TestHasPermission_UnknownSubject(t *testing.T) {
	for _, s := range []string{"", "root", "ADMIN", "moderator", "user"} {
		for _, required := range All() {
			require.False(t, HasPermission(Role(s), required), "unknown subject %q", s)
		}
	}
}

func TestHasPermission_UnknownRequired(t *testing.T) {
	for _, subject := range All() {
		require.False(t, HasPermission(subject, Role("superuser")))
		require.False(t, HasPermission(subject, Role("")))
	}
}

func TestParse(t *testing.T) {
	r, ok := Parse("volunteer")
	require.True(t, ok)
	require.Equal(t, Volunteer, r)

	_, ok = Parse("owner")
	require.False(t, ok)
}
