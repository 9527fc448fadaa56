package http_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The committed contract in api/openapi.yml documents this adapter. The
// test keeps it loadable and in sync with the routes the server registers.
func Test_OpenAPIContract(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(filepath.Join("..", "..", "..", "..", "api", "openapi.yml"))
	require.NoError(t, err)

	require.NoError(t, doc.Validate(context.Background()))

	t.Run("should document every registered route", func(t *testing.T) {
		expected := []string{
			"/health",
			"/api/v1/orders/rank",
			"/api/v1/orders",
			"/api/v1/orders/ranked",
			"/api/v1/orders/{id}/complete",
			"/api/v1/dashboard",
		}

		for _, path := range expected {
			assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
		}
		assert.Len(t, doc.Paths.Map(), len(expected))
	})

	t.Run("should constrain priority classes to the four tiers", func(t *testing.T) {
		scored := doc.Components.Schemas["ScoredOrder"]
		require.NotNil(t, scored)

		class := scored.Value.Properties["priority_class"]
		require.NotNil(t, class)
		assert.ElementsMatch(t,
			[]interface{}{"critical", "high", "medium", "low"},
			class.Value.Enum,
		)
	})
}
