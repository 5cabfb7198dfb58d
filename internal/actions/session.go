package actions

import (
	"strings"

	"shelter-admin/internal/ports/store"
)

// Session representa el estado de autenticación de un request más el
// handle al store ligado a esa identidad. Se construye por request en
// el handler; no hay cliente global compartido entre requests.
type Session struct {
	UserID string
	Store  store.Client
}

func (s Session) Active() bool {
	return strings.TrimSpace(s.UserID) != "" && s.Store != nil
}
