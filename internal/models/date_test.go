package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateAcceptsBothClientFormats(t *testing.T) {
	// Фронтенд шлёт либо голую дату, либо полный timestamp.
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15"`), &d))
	assert.Equal(t, "2024-03-15", d.Format("2006-01-02"))

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15T10:30:00Z"`), &d))
	assert.Equal(t, "2024-03-15", d.Format("2006-01-02"))

	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &d))
}

func TestDateMarshalsDateOnly(t *testing.T) {
	d := NewDate(time.Date(2024, 3, 15, 18, 45, 0, 0, time.UTC))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(out))
}

func TestDateScanFromDriver(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-15", d.Format("2006-01-02"))

	require.NoError(t, d.Scan([]byte("2024-04-01")))
	assert.Equal(t, "2024-04-01", d.Format("2006-01-02"))
}
