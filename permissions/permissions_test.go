package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"title-review-api/models"
)

func user(role models.UserRole) *models.User {
	return &models.User{ID: 1, Username: "u", Role: role}
}

func TestFromMethod(t *testing.T) {
	assert.Equal(t, ActionSafe, FromMethod(http.MethodGet))
	assert.Equal(t, ActionSafe, FromMethod(http.MethodHead))
	assert.Equal(t, ActionSafe, FromMethod(http.MethodOptions))
	assert.Equal(t, ActionCreate, FromMethod(http.MethodPost))
	assert.Equal(t, ActionMutate, FromMethod(http.MethodPatch))
	assert.Equal(t, ActionMutate, FromMethod(http.MethodPut))
	assert.Equal(t, ActionDelete, FromMethod(http.MethodDelete))
}

func TestCanManageCatalog(t *testing.T) {
	superuser := user(models.RoleUser)
	superuser.Superuser = true

	cases := []struct {
		name   string
		user   *models.User
		action Action
		want   bool
	}{
		{"anonymous read", nil, ActionSafe, true},
		{"anonymous create", nil, ActionCreate, false},
		{"user create", user(models.RoleUser), ActionCreate, false},
		{"moderator create", user(models.RoleModerator), ActionCreate, false},
		{"moderator delete", user(models.RoleModerator), ActionDelete, false},
		{"admin create", user(models.RoleAdmin), ActionCreate, true},
		{"admin mutate", user(models.RoleAdmin), ActionMutate, true},
		{"admin delete", user(models.RoleAdmin), ActionDelete, true},
		{"superuser create", superuser, ActionCreate, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanManageCatalog(tc.user, tc.action))
		})
	}
}

func TestCanTouchContent(t *testing.T) {
	superuser := user(models.RoleUser)
	superuser.Superuser = true

	cases := []struct {
		name    string
		user    *models.User
		action  Action
		isOwner bool
		want    bool
	}{
		{"anonymous read", nil, ActionSafe, false, true},
		{"anonymous create", nil, ActionCreate, false, false},
		{"anonymous mutate", nil, ActionMutate, false, false},
		{"user create", user(models.RoleUser), ActionCreate, false, true},
		{"owner mutate", user(models.RoleUser), ActionMutate, true, true},
		{"owner delete", user(models.RoleUser), ActionDelete, true, true},
		{"stranger mutate", user(models.RoleUser), ActionMutate, false, false},
		{"stranger delete", user(models.RoleUser), ActionDelete, false, false},
		{"moderator mutate", user(models.RoleModerator), ActionMutate, false, true},
		{"moderator delete", user(models.RoleModerator), ActionDelete, false, true},
		{"admin mutate", user(models.RoleAdmin), ActionMutate, false, true},
		{"superuser delete", superuser, ActionDelete, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTouchContent(tc.user, tc.action, tc.isOwner))
		})
	}
}

// A grant at any tier must survive every promotion above it.
func TestTierMonotonicity(t *testing.T) {
	tiers := []*models.User{
		user(models.RoleUser),
		user(models.RoleModerator),
		user(models.RoleAdmin),
	}
	actions := []Action{ActionSafe, ActionCreate, ActionMutate, ActionDelete}

	for _, action := range actions {
		for _, isOwner := range []bool{false, true} {
			for i := 0; i < len(tiers)-1; i++ {
				if CanTouchContent(tiers[i], action, isOwner) {
					assert.True(t, CanTouchContent(tiers[i+1], action, isOwner),
						"content grant lost between tier %d and %d", i, i+1)
				}
				if CanManageCatalog(tiers[i], action) {
					assert.True(t, CanManageCatalog(tiers[i+1], action),
						"catalog grant lost between tier %d and %d", i, i+1)
				}
			}
		}
	}
}

func TestCanAdministerUsers(t *testing.T) {
	assert.False(t, CanAdministerUsers(nil))
	assert.False(t, CanAdministerUsers(user(models.RoleUser)))
	assert.False(t, CanAdministerUsers(user(models.RoleModerator)))
	assert.True(t, CanAdministerUsers(user(models.RoleAdmin)))

	superuser := user(models.RoleUser)
	superuser.Superuser = true
	assert.True(t, CanAdministerUsers(superuser))
}
