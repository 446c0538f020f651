package dockerengine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrainStatusStream(t *testing.T) {
	stream := `{"status":"The push refers to repository [acme/churn-model]"}
{"status":"Pushed","id":"abc123"}
{"status":"1: digest: sha256:deadbeef size: 528"}
`

	out, err := drainStatusStream(strings.NewReader(stream), "acme/churn-model:1", "push")
	assert.NoError(t, err)
	assert.Contains(t, out, "Pushed")
	assert.Contains(t, out, "digest: sha256:deadbeef")
}

func TestDrainStatusStream_InStreamError(t *testing.T) {
	stream := `{"status":"Preparing"}
{"errorDetail":{"message":"denied: requested access to the resource is denied"},"error":"denied: requested access to the resource is denied"}
`

	_, err := drainStatusStream(strings.NewReader(stream), "acme/churn-model:1", "push")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "denied")
}

func TestDrainStatusStream_MalformedStream(t *testing.T) {
	_, err := drainStatusStream(strings.NewReader("{not json"), "acme/churn-model:1", "pull")
	assert.Error(t, err)
}

func TestDrainStatusStream_Empty(t *testing.T) {
	out, err := drainStatusStream(strings.NewReader(""), "acme/churn-model:1", "push")
	assert.NoError(t, err)
	assert.Empty(t, out)
}
