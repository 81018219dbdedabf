package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceName(t *testing.T) {
	assert.Equal(t, "ssh", ServiceName(22))
	assert.Equal(t, "http", ServiceName(80))
	assert.Equal(t, "https", ServiceName(443))
	assert.Equal(t, "mysql", ServiceName(3306))
	assert.Equal(t, ServiceUnknown, ServiceName(54321))
}
