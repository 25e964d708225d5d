package review

import (
	"sync"

	"cordwain/internal/shared/logger"
)

type sessionKey struct {
	orderID    uint
	positionID uint
}

// SessionManager hands out one specification session per order position.
// Concurrent requests for the same position share a session, so the
// active-view state and the loaded aggregate survive across requests.
type SessionManager struct {
	mu       sync.Mutex
	svc      SpecificationService
	registry *TicketRegistry
	log      logger.Interface
	sessions map[sessionKey]*SpecificationSession
}

func NewSessionManager(svc SpecificationService, registry *TicketRegistry, log logger.Interface) *SessionManager {
	return &SessionManager{
		svc:      svc,
		registry: registry,
		log:      log,
		sessions: make(map[sessionKey]*SpecificationSession),
	}
}

// Session returns the session for one order position, creating it on
// first use. The caller is expected to Load before reading from it.
func (m *SessionManager) Session(orderID, positionID uint) (*SpecificationSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := sessionKey{orderID: orderID, positionID: positionID}
	if existing, ok := m.sessions[key]; ok {
		return existing, nil
	}

	session, err := NewSpecificationSession(m.svc, m.registry, m.log, orderID, positionID)
	if err != nil {
		return nil, err
	}
	m.sessions[key] = session
	return session, nil
}
