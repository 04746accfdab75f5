package upload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	t.Parallel()
	name := objectName("front.jpg")
	assert.True(t, strings.HasPrefix(name, "kyc/"))
	assert.True(t, strings.HasSuffix(name, "-front.jpg"))

	// path components from the local filename are stripped
	assert.NotContains(t, objectName("../../etc/passwd.png"), "..")

	// names are unique per upload
	assert.NotEqual(t, objectName("front.jpg"), objectName("front.jpg"))
}
