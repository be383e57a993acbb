package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_MarshalJSON(t *testing.T) {
	ts := Timestamp(time.Date(2023, 10, 27, 10, 0, 0, 0, time.UTC))
	data, err := json.Marshal(ts)
	assert.NoError(t, err)
	assert.Equal(t, "\"2023-10-27T10:00:00Z\"", string(data))
}

func TestTimestamp_UnmarshalJSON_Valid(t *testing.T) {
	var ts Timestamp
	err := json.Unmarshal([]byte("\"2023-10-27T10:00:00Z\""), &ts)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 10, 27, 10, 0, 0, 0, time.UTC), time.Time(ts))
}

func TestTimestamp_UnmarshalJSON_SubSecond(t *testing.T) {
	var ts Timestamp
	err := json.Unmarshal([]byte("\"2023-10-27T10:00:00.123456789Z\""), &ts)
	assert.NoError(t, err)
	assert.Equal(t, 123456789, time.Time(ts).Nanosecond())
}

func TestTimestamp_UnmarshalJSON_Invalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte("\"invalid-date\""), &ts))
}

func TestAPIResponse_JSONRoundTrip(t *testing.T) {
	resp := APIResponse[string]{
		Success:   true,
		Data:      "data",
		RequestID: "req-123",
		Timestamp: NewTimestamp(),
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var resp2 APIResponse[string]
	require.NoError(t, json.Unmarshal(data, &resp2))

	assert.Equal(t, resp.Success, resp2.Success)
	assert.Equal(t, resp.Data, resp2.Data)
	assert.Equal(t, resp.RequestID, resp2.RequestID)
	assert.Nil(t, resp2.Error)
}

func TestAPIResponse_ErrorEnvelope(t *testing.T) {
	resp := APIResponse[any]{
		Success:   false,
		Error:     &ErrorDetail{Code: "RXN_001", Message: "invalid reaction SMILES"},
		Timestamp: NewTimestamp(),
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\"data\"")

	var resp2 APIResponse[any]
	require.NoError(t, json.Unmarshal(data, &resp2))
	require.NotNil(t, resp2.Error)
	assert.Equal(t, "RXN_001", resp2.Error.Code)
	assert.Equal(t, "invalid reaction SMILES", resp2.Error.Message)
}
