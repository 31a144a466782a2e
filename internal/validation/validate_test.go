package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEntityType(t *testing.T) {
	tests := []struct {
		name       string
		entityType string
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "valid - asset",
			entityType: "asset",
			wantErr:    false,
		},
		{
			name:       "valid - task",
			entityType: "task",
			wantErr:    false,
		},
		{
			name:       "valid - schedule",
			entityType: "schedule",
			wantErr:    false,
		},
		{
			name:       "valid - location",
			entityType: "location",
			wantErr:    false,
		},
		{
			name:       "invalid - empty",
			entityType: "",
			wantErr:    true,
			errMsg:     "entity type cannot be empty",
		},
		{
			name:       "invalid - untracked type",
			entityType: "comment",
			wantErr:    true,
			errMsg:     "not tracked for sync",
		},
		{
			name:       "invalid - plural form",
			entityType: "assets",
			wantErr:    true,
			errMsg:     "not tracked for sync",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntityType(tt.entityType)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateSyncTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid - sync-all",
			tag:     "sync-all",
			wantErr: false,
		},
		{
			name:    "valid - sync-critical",
			tag:     "sync-critical",
			wantErr: false,
		},
		{
			name:    "valid - type tag",
			tag:     "sync-assets",
			wantErr: false,
		},
		{
			name:    "valid - custom tag",
			tag:     "nightly-refresh",
			wantErr: false,
		},
		{
			name:    "valid - with digits",
			tag:     "sync-v2",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			tag:     "",
			wantErr: true,
			errMsg:  "sync tag cannot be empty",
		},
		{
			name:    "invalid - too long (65 chars)",
			tag:     "sync-aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", // 65 символов
			wantErr: true,
			errMsg:  "must not exceed 64 characters",
		},
		{
			name:    "invalid - uppercase",
			tag:     "Sync-All",
			wantErr: true,
			errMsg:  "can only contain lowercase letters",
		},
		{
			name:    "invalid - starts with digit",
			tag:     "2sync",
			wantErr: true,
			errMsg:  "can only contain lowercase letters",
		},
		{
			name:    "invalid - with space",
			tag:     "sync all",
			wantErr: true,
			errMsg:  "can only contain lowercase letters",
		},
		{
			name:    "invalid - with underscore",
			tag:     "sync_all",
			wantErr: true,
			errMsg:  "can only contain lowercase letters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSyncTag(tt.tag)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateDeviceID(t *testing.T) {
	tests := []struct {
		name     string
		deviceID string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid - simple",
			deviceID: "pixel7",
			wantErr:  false,
		},
		{
			name:     "valid - with dash and underscore",
			deviceID: "field-tablet_04",
			wantErr:  false,
		},
		{
			name:     "valid - uppercase serial",
			deviceID: "SN-9F2K1",
			wantErr:  false,
		},
		{
			name:     "valid - max length",
			deviceID: "a123456789012345678901234567890123456789012345678901234567890123", // 64 символа
			wantErr:  false,
		},
		{
			name:     "invalid - empty",
			deviceID: "",
			wantErr:  true,
			errMsg:   "device id cannot be empty",
		},
		{
			name:     "invalid - too short (2 chars)",
			deviceID: "ab",
			wantErr:  true,
			errMsg:   "must be at least 3 characters",
		},
		{
			name:     "invalid - too long (65 chars)",
			deviceID: "a1234567890123456789012345678901234567890123456789012345678901234", // 65 символов
			wantErr:  true,
			errMsg:   "must not exceed 64 characters",
		},
		{
			name:     "invalid - with dot",
			deviceID: "tablet.04",
			wantErr:  true,
			errMsg:   "can only contain letters",
		},
		{
			name:     "invalid - with space",
			deviceID: "field tablet",
			wantErr:  true,
			errMsg:   "can only contain letters",
		},
		{
			name:     "invalid - cyrillic characters",
			deviceID: "планшет",
			wantErr:  true,
			errMsg:   "can only contain letters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeviceID(tt.deviceID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateClientID(t *testing.T) {
	tests := []struct {
		name     string
		clientID string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid - uuid v4",
			clientID: "7d444840-9dc0-11d1-b245-5ffdce74fad2",
			wantErr:  false,
		},
		{
			name:     "valid - uppercase uuid",
			clientID: "7D444840-9DC0-11D1-B245-5FFDCE74FAD2",
			wantErr:  false,
		},
		{
			name:     "invalid - empty",
			clientID: "",
			wantErr:  true,
			errMsg:   "client id cannot be empty",
		},
		{
			name:     "invalid - not a uuid",
			clientID: "client-1",
			wantErr:  true,
			errMsg:   "must be a valid UUID",
		},
		{
			name:     "invalid - truncated uuid",
			clientID: "7d444840-9dc0-11d1-b245",
			wantErr:  true,
			errMsg:   "must be a valid UUID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClientID(tt.clientID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
