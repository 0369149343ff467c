package session

import (
	"encoding/json"
	"strconv"

	"secret_santa/internal/domain"
	"secret_santa/internal/localstore"
)

// LocalAuth reads and writes the signed-in state kept in the local store
type LocalAuth struct {
	store *localstore.Store
}

// NewLocalAuth wraps a local store
func NewLocalAuth(store *localstore.Store) *LocalAuth {
	return &LocalAuth{store: store}
}

// IsAuthenticated reports whether a session flag and token are stored
func (a *LocalAuth) IsAuthenticated() bool {
	flag, _ := a.store.GetItem(localstore.KeyIsAuthenticated)
	token, _ := a.store.GetItem(localstore.KeyToken)
	return flag == "true" && token != ""
}

// GetUser returns the stored user record, if a readable one exists
func (a *LocalAuth) GetUser() (*domain.UserProfile, bool) {
	raw, ok := a.store.GetItem(localstore.KeyUser)
	if !ok || raw == "" {
		return nil, false
	}
	var user domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	return &user, true
}

// Token returns the stored session token
func (a *LocalAuth) Token() string {
	token, _ := a.store.GetItem(localstore.KeyToken)
	return token
}

// SaveLogin persists a successful login
func (a *LocalAuth) SaveLogin(token string, user domain.UserProfile) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return a.store.SetItems(map[string]string{
		localstore.KeyIsAuthenticated: "true",
		localstore.KeyToken:           token,
		localstore.KeyUserID:          strconv.FormatUint(uint64(user.ID), 10),
		localstore.KeyUser:            string(raw),
	})
}

// Logout tears the stored session down
func (a *LocalAuth) Logout() error {
	return a.store.Clear()
}
