package store

import (
	"strings"

	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
)

// SettingsUpdate campos modificables de Settings; nil = sin cambio.
type SettingsUpdate struct {
	CompanyName *string
	Currency    *string
}

// UpdateSettings aplica un merge superficial sobre la configuración global.
func (s *Store) UpdateSettings(in SettingsUpdate) (entity.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state.Clone()
	if in.CompanyName != nil {
		s.state.Settings.CompanyName = *in.CompanyName
	}
	if in.Currency != nil {
		s.state.Settings.Currency = *in.Currency
	}
	if err := s.commit(prev); err != nil {
		return entity.Settings{}, err
	}
	return s.state.Settings, nil
}

// Settings devuelve la configuración actual.
func (s *Store) Settings() entity.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

// ToggleTheme alterna entre tema claro y oscuro y devuelve el tema resultante.
func (s *Store) ToggleTheme() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state.Clone()
	if s.state.Theme == entity.ThemeLight {
		s.state.Theme = entity.ThemeDark
	} else {
		s.state.Theme = entity.ThemeLight
	}
	if err := s.commit(prev); err != nil {
		return "", err
	}
	return s.state.Theme, nil
}

// Login abre una sesión demo: cualquier par email/password no vacío es válido
// y el nombre a mostrar se deriva de la parte local del email. Credenciales
// vacías fallan con ErrValidation sin mutar el estado.
func (s *Store) Login(email, password string) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email == "" || password == "" {
		return entity.User{}, domain.ErrValidation
	}

	user := entity.User{Email: email, Name: displayName(email)}
	prev := s.state.Clone()
	s.state.Auth = entity.Session{IsAuthenticated: true, User: &user}
	if err := s.commit(prev); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

// Logout cierra la sesión.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state.Clone()
	s.state.Auth = entity.Session{IsAuthenticated: false, User: nil}
	return s.commit(prev)
}

// Session devuelve la sesión actual.
func (s *Store) Session() entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state.Auth
	if out.User != nil {
		u := *out.User
		out.User = &u
	}
	return out
}

// displayName deriva el nombre a mostrar de la parte local del email.
func displayName(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}
	return local
}
