package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_BuildsForBothEnvironments(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		log, err := New(env, "segmentation-api")

		assert.NoError(t, err)
		assert.NotNil(t, log)
	}
}
