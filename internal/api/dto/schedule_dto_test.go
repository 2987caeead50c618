package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neogig/neogig/internal/domain"
	apperrors "github.com/neogig/neogig/pkg/util"
)

func TestSchedulePayloadToDomain(t *testing.T) {
	payload := SchedulePayload{
		"MON": {Start: "09:00", End: "17:00"},
		"SAT": {Start: "10:00", End: "14:00"},
	}

	schedule, err := payload.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.Schedule{
		domain.Monday:   {Start: "09:00", End: "17:00"},
		domain.Saturday: {Start: "10:00", End: "14:00"},
	}, schedule)
}

func TestSchedulePayloadUnknownDay(t *testing.T) {
	payload := SchedulePayload{"FUNDAY": {Start: "09:00", End: "17:00"}}

	_, err := payload.ToDomain()
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Equal(t, "FUNDAY", domainErr.Details["day"])
}

func TestSchedulePayloadNil(t *testing.T) {
	var payload SchedulePayload
	schedule, err := payload.ToDomain()
	require.NoError(t, err)
	assert.Nil(t, schedule)
}

func TestScheduleRoundTrip(t *testing.T) {
	schedule := domain.Schedule{
		domain.Wednesday: {Start: "08:30", End: "12:30"},
	}
	back, err := ScheduleFromDomain(schedule).ToDomain()
	require.NoError(t, err)
	assert.Equal(t, schedule, back)
}

func TestValidateSignupRequests(t *testing.T) {
	tests := []struct {
		name    string
		req     any
		wantErr bool
		field   string
	}{
		{
			name: "valid seeker signup",
			req: SeekerSignupRequest{
				Email:    "ada@example.com",
				Password: "hunter2hunter2",
				Name:     "Ada",
			},
		},
		{
			name:    "bad email",
			req:     SeekerSignupRequest{Email: "not-an-email", Password: "hunter2hunter2", Name: "Ada"},
			wantErr: true,
			field:   "Email",
		},
		{
			name:    "short password",
			req:     SeekerSignupRequest{Email: "ada@example.com", Password: "short", Name: "Ada"},
			wantErr: true,
			field:   "Password",
		},
		{
			name:    "bad website",
			req:     CompanySignupRequest{Email: "jobs@acme.test", Password: "hunter2hunter2", Name: "Acme", Website: "not a url"},
			wantErr: true,
			field:   "Website",
		},
		{
			name: "website optional",
			req:  CompanySignupRequest{Email: "jobs@acme.test", Password: "hunter2hunter2", Name: "Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var domainErr *apperrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
			assert.Contains(t, domainErr.Details, tt.field)
		})
	}
}
