package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewDirectory, "directory"},
		{ViewDetail, "detail"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestAction_SuccessMessage(t *testing.T) {
	assert.Equal(t, "Contact copied to clipboard", ActionCopyContact.SuccessMessage())
	assert.Equal(t, "Opened source in browser", ActionOpenSource.SuccessMessage())
	assert.Equal(t, "Done", Action("other").SuccessMessage())
}

func TestMessages_CarryErrors(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, err, SnapshotReady{Err: err}.Err)
	assert.Equal(t, err, SettingsLoaded{Err: err}.Err)
	assert.Equal(t, err, ActionCompleted{Action: ActionOpenSource, Err: err}.Err)
	assert.Equal(t, err, ErrorOccurred{Err: err}.Err)
}
