package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPorts(t *testing.T) {
	actions := &mockActions{}
	engine := failingEngine{}

	ports := NewPorts(engine, actions, nil)

	assert.Equal(t, engine, ports.View)
	assert.Equal(t, actions, ports.Actions)
	assert.Nil(t, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{"nil ports", nil, ErrInvalidPorts},
		{"missing view engine", &Ports{Actions: &mockActions{}}, ErrMissingViewEngine},
		{"missing actions", &Ports{View: failingEngine{}}, ErrMissingActionService},
		{"settings optional", &Ports{View: failingEngine{}, Actions: &mockActions{}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestErrors_Messages(t *testing.T) {
	assert.Equal(t, "tui: view engine is required", ErrMissingViewEngine.Error())
	assert.Equal(t, "tui: record action service is required", ErrMissingActionService.Error())
	assert.Equal(t, "tui: invalid ports configuration", ErrInvalidPorts.Error())
}
