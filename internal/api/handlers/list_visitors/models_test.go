package list_visitors

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListRequest_Defaults(t *testing.T) {
	req, err := ParseListRequest(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, defaultLimit, req.Limit)
	assert.Nil(t, req.Status)
	assert.Nil(t, req.Purpose)
	assert.Nil(t, req.DepartmentID)
	assert.Nil(t, req.StartDate)
	assert.Nil(t, req.EndDate)
}

func TestParseListRequest_AllFilters(t *testing.T) {
	query := url.Values{
		"status":       {"pending"},
		"purpose":      {"business_meeting"},
		"departmentId": {"3"},
		"startDate":    {"2026-09-01"},
		"endDate":      {"2026-09-30"},
		"limit":        {"25"},
	}

	req, err := ParseListRequest(query)
	require.NoError(t, err)

	require.NotNil(t, req.Status)
	assert.Equal(t, "pending", *req.Status)
	require.NotNil(t, req.Purpose)
	assert.Equal(t, "business_meeting", *req.Purpose)
	require.NotNil(t, req.DepartmentID)
	assert.Equal(t, int64(3), *req.DepartmentID)
	require.NotNil(t, req.StartDate)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *req.StartDate)
	require.NotNil(t, req.EndDate)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), *req.EndDate)
	assert.Equal(t, 25, req.Limit)
}

func TestParseListRequest_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
	}{
		{name: "bad departmentId", query: url.Values{"departmentId": {"abc"}}},
		{name: "bad startDate", query: url.Values{"startDate": {"01.09.2026"}}},
		{name: "bad endDate", query: url.Values{"endDate": {"tomorrow"}}},
		{name: "bad limit", query: url.Values{"limit": {"ten"}}},
		{name: "zero limit", query: url.Values{"limit": {"0"}}},
		{name: "negative limit", query: url.Values{"limit": {"-5"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseListRequest(tt.query)
			assert.Error(t, err)
		})
	}
}
