//go:build unit

package crt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestParseStrategy(t *testing.T) {
	t.Run("parses every text id", func(t *testing.T) {
		for _, strategy := range Strategies() {
			// Execute
			parsed, err := ParseStrategy(strategy.String())

			// Check
			assert.NoError(t, err, "parse %s", strategy)
			assert.Equal(t, strategy, parsed, "same strategy")
		}
	})

	t.Run("unknown text id is an invalid argument", func(t *testing.T) {
		// Execute
		_, err := ParseStrategy("cuckoo")

		// Check
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "invalid argument")
	})

	t.Run("json uses text ids", func(t *testing.T) {
		// Prepare
		var decoded struct {
			Strategy Strategy `json:"strategy"`
		}

		// Execute
		encoded, err1 := json.Marshal(map[string]Strategy{"strategy": QuadraticProbing})
		err2 := json.Unmarshal(encoded, &decoded)
		err3 := json.Unmarshal([]byte(`{"strategy": "cuckoo"}`), &decoded)

		// Check
		assert.NoError(t, err1, "marshal")
		assert.NoError(t, err2, "unmarshal")
		assert.JSONEq(t, `{"strategy": "quadratic"}`, string(encoded), "text id")
		assert.Equal(t, QuadraticProbing, decoded.Strategy, "round trip")
		assert.Error(t, err3, "unknown text id")
	})
}
