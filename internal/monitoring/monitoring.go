package monitoring

import (
	"sync"

	"github.com/osmike/deadline/internal/domain"
)

// Monitor is an in-memory monitoring backend that keeps the latest state
// snapshot of every wait, keyed by wait ID. Safe for concurrent use.
type Monitor struct {
	data sync.Map
}

func New() *Monitor {
	return &Monitor{}
}

// SaveState stores the state snapshot, replacing any previous snapshot
// recorded under the same wait ID.
func (m *Monitor) SaveState(state domain.StateDTO) {
	m.data.Store(state.ID, state)
}

// GetStateByID retrieves the stored state for the given wait ID.
func (m *Monitor) GetStateByID(id string) (domain.StateDTO, bool) {
	if v, ok := m.data.Load(id); ok {
		return v.(domain.StateDTO), true
	}
	return domain.StateDTO{}, false
}

// GetStates returns the stored state of all recorded waits, in no
// particular order.
func (m *Monitor) GetStates() []domain.StateDTO {
	var states []domain.StateDTO
	m.data.Range(func(_, v interface{}) bool {
		states = append(states, v.(domain.StateDTO))
		return true
	})
	return states
}
