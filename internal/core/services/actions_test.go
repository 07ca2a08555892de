package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

func TestRecordActionService_CopyContact(t *testing.T) {
	clipboard := &mockClipboard{}
	service := NewRecordActionService(clipboard, &mockOpener{})

	err := service.CopyContact(context.Background(), &domain.Organization{Name: "Paws", Contact: "+357 99 000000"})

	require.NoError(t, err)
	assert.Equal(t, []string{"+357 99 000000"}, clipboard.copied)
}

func TestRecordActionService_CopyContact_Errors(t *testing.T) {
	ctx := context.Background()
	failure := errors.New("no clipboard tool")

	tests := []struct {
		name      string
		clipboard *mockClipboard
		org       *domain.Organization
		wantIs    error
	}{
		{"nil organization", &mockClipboard{}, nil, domain.ErrInvalidInput},
		{"empty contact", &mockClipboard{}, &domain.Organization{Contact: "  "}, domain.ErrInvalidInput},
		{"clipboard failure", &mockClipboard{err: failure}, &domain.Organization{Contact: "x"}, failure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewRecordActionService(tt.clipboard, nil)
			assert.ErrorIs(t, service.CopyContact(ctx, tt.org), tt.wantIs)
		})
	}
}

func TestRecordActionService_CopyContact_NoClipboard(t *testing.T) {
	service := NewRecordActionService(nil, nil)

	err := service.CopyContact(context.Background(), &domain.Organization{Contact: "x"})

	assert.Error(t, err)
}

func TestRecordActionService_OpenSource(t *testing.T) {
	opener := &mockOpener{}
	service := NewRecordActionService(nil, opener)

	err := service.OpenSource(context.Background(), &domain.Organization{Source: " https://example.org/paws "})

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.org/paws"}, opener.opened)
}

func TestRecordActionService_OpenSource_RejectsNonWebURLs(t *testing.T) {
	sources := []string{
		"",
		"Facebook post",
		"file:///etc/passwd",
		"javascript:alert(1)",
		"https://",
		"example.org/paws",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			opener := &mockOpener{}
			service := NewRecordActionService(nil, opener)

			err := service.OpenSource(context.Background(), &domain.Organization{Source: source})

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, opener.opened)
		})
	}
}

func TestRecordActionService_OpenSource_NilCases(t *testing.T) {
	ctx := context.Background()

	err := NewRecordActionService(nil, &mockOpener{}).OpenSource(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = NewRecordActionService(nil, nil).OpenSource(ctx, &domain.Organization{Source: "https://example.org"})
	assert.Error(t, err)
}

func TestRecordActionService_OpenSource_OpenerFailure(t *testing.T) {
	failure := errors.New("no browser")
	service := NewRecordActionService(nil, &mockOpener{err: failure})

	err := service.OpenSource(context.Background(), &domain.Organization{Source: "http://example.org"})

	assert.ErrorIs(t, err, failure)
}
