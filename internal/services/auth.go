package services

import (
	"context"
	"crypto/subtle"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/models"
)

// Login loads the document from disk and opens a session when the
// credentials match the stored user. A failed login leaves any existing
// session untouched.
func (m *Manager) Login(ctx context.Context, username, password string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, err := m.loadDataFromFile(ctx)
	if err != nil {
		return m.report(ctx, "auth:login", err)
	}

	if !credentialsMatch(doc.User, username, password) {
		m.logger.Warn(ctx, "login rejected", "username", username)
		return false
	}

	m.session = &session{username: username, doc: doc}
	m.logger.Info(ctx, "logged in", "username", username)
	return true
}

func credentialsMatch(u models.User, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(u.Username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1
	return userOK && passOK
}

// IsAuthenticated reports whether a session is open.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session != nil
}

// Logout closes the session and drops the cached document.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != nil {
		m.logger.Info(ctx, "logged out", "username", m.session.username)
	}
	m.session = nil
}

// ChangePassword replaces the stored password when oldPassword matches it.
func (m *Manager) ChangePassword(ctx context.Context, oldPassword, newPassword string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report(ctx, "auth:changePassword", m.changePassword(ctx, oldPassword, newPassword))
}

func (m *Manager) changePassword(ctx context.Context, oldPassword, newPassword string) error {
	doc, err := m.requireDoc()
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(doc.User.Password), []byte(oldPassword)) != 1 {
		return common.ErrWrongPassword
	}
	doc.User.Password = newPassword
	return m.saveDataToFile(ctx, doc)
}

// IsFirstRun reports whether data.json does not exist yet.
func (m *Manager) IsFirstRun() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.docs.Exists()
}

// GetInitialPassword returns the generated password of a store that has not
// had its password changed. On first run it creates the store. ok is false
// once the password no longer looks generated.
func (m *Manager) GetInitialPassword(ctx context.Context) (password string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.docs.Exists() {
		doc, err := m.defaultDocument()
		if err == nil {
			err = m.saveDataToFile(ctx, doc)
		}
		if err != nil {
			return "", m.report(ctx, "auth:getInitialPassword", err)
		}
		m.logger.Info(ctx, "created default document", "path", m.docs.Path())
		return doc.User.Password, true
	}

	doc, err := m.loadDataFromFile(ctx)
	if err != nil {
		return "", m.report(ctx, "auth:getInitialPassword", err)
	}
	if !common.LooksGenerated(doc.User.Password) {
		return "", false
	}
	return doc.User.Password, true
}

// IsUsingDefaultPassword reports whether the stored password still looks
// generated. A store that does not exist yet counts as using the default.
func (m *Manager) IsUsingDefaultPassword(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.docs.Exists() {
		return true
	}
	doc, err := m.loadDataFromFile(ctx)
	if err != nil {
		return m.report(ctx, "auth:isUsingDefaultPassword", err)
	}
	return common.LooksGenerated(doc.User.Password)
}

// LoadData returns a copy of the session document, or nil without a session.
func (m *Manager) LoadData(ctx context.Context) *models.DataStore {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, err := m.requireDoc()
	if err != nil {
		m.report(ctx, "data:load", err)
		return nil
	}
	return doc.Clone()
}

// SaveData replaces the session document with doc and persists it.
func (m *Manager) SaveData(ctx context.Context, doc *models.DataStore) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.report(ctx, "data:save", m.saveData(ctx, doc))
}

func (m *Manager) saveData(ctx context.Context, doc *models.DataStore) error {
	if _, err := m.requireDoc(); err != nil {
		return err
	}
	if doc == nil {
		return common.ErrNoDocument
	}
	next := doc.Clone()
	m.session.doc = next
	return m.saveDataToFile(ctx, next)
}
